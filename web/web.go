// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

// Package web embeds the static assets shipped inside the server binary.
package web

import "embed"

// Templates holds the HTML page templates under templates/.
//
//go:embed templates
var Templates embed.FS
