// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import "html/template"

var templates = template.Must(template.New("render").Parse(`
{{define "heading"}}{{if .Title}}<h2 class="page-title">{{.Title}}</h2>{{end}}{{end}}

{{define "image"}}{{if .Image}}<figure class="page-image"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy"></figure>{{end}}{{end}}

{{define "simple-text"}}<section class="page page-{{.Type}} layout-simple-text" id="page-{{.Number}}">
{{template "heading" .}}<div class="page-body">{{.Body}}</div>
<footer class="page-number">{{.Number}}</footer></section>{{end}}

{{define "image-side"}}<section class="page page-{{.Type}} layout-{{.Layout}}" id="page-{{.Number}}">
{{template "heading" .}}<div class="page-columns">{{template "image" .}}<div class="page-body">{{.Body}}</div></div>
<footer class="page-number">{{.Number}}</footer></section>{{end}}

{{define "image-top"}}<section class="page page-{{.Type}} layout-image-top" id="page-{{.Number}}">
{{template "image" .}}{{template "heading" .}}<div class="page-body">{{.Body}}</div>
<footer class="page-number">{{.Number}}</footer></section>{{end}}

{{define "image-bottom"}}<section class="page page-{{.Type}} layout-image-bottom" id="page-{{.Number}}">
{{template "heading" .}}<div class="page-body">{{.Body}}</div>{{template "image" .}}
<footer class="page-number">{{.Number}}</footer></section>{{end}}

{{define "full-image"}}<section class="page page-{{.Type}} layout-full-image" id="page-{{.Number}}"{{if .Image}} style="background-image: url('{{.Image}}')"{{end}}>
<div class="page-overlay">{{template "heading" .}}<div class="page-body">{{.Body}}</div></div></section>{{end}}

{{define "quote-break"}}<section class="page page-{{.Type}} layout-quote-break" id="page-{{.Number}}">
<blockquote class="page-quote">{{.Body}}</blockquote></section>{{end}}

{{define "contents"}}<section class="page page-CONTENTS layout-simple-text" id="page-{{.Number}}">
{{template "heading" .}}<ol class="contents">{{range .Contents}}<li><a href="#page-{{.Page}}">{{.Title}}</a><span class="contents-page">{{.Page}}</span></li>{{end}}</ol>
<footer class="page-number">{{.Number}}</footer></section>{{end}}

{{define "document"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: Georgia, serif; background: #eee; }
.page { width: 210mm; min-height: 297mm; margin: 1rem auto; padding: 2rem; box-sizing: border-box; background: #fff; position: relative; page-break-after: always; }
.page-columns { display: flex; gap: 1.5rem; }
.layout-image-left .page-columns { flex-direction: row; }
.layout-image-right .page-columns { flex-direction: row-reverse; }
.page-image img { max-width: 100%; }
.layout-full-image { background-size: cover; background-position: center; color: #fff; }
.page-overlay { background: rgba(0, 0, 0, 0.45); padding: 1.5rem; }
.page-number { position: absolute; bottom: 1rem; right: 2rem; font-size: 0.8rem; }
.contents li { display: flex; justify-content: space-between; }
</style>
</head>
<body>
{{range .Pages}}{{.}}
{{end}}</body>
</html>{{end}}
`))
