package docpress

import "encoding/base64"

func encode64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// compile flattens the accumulated configuration into the wire document.
// It only reads the request, so compiling the same state twice yields the
// same document; json.Marshal over the returned maps gives a canonical
// compact encoding because map keys are serialized sorted.
func (r *Request) compile() map[string]any {
	doc := map[string]any{
		"format": r.format.wire(),
	}
	if r.url != "" {
		doc["url"] = r.url
	} else {
		doc["html"] = r.html
	}

	if r.width != nil {
		doc["width"] = *r.width
	}
	if r.height != nil {
		doc["height"] = *r.height
	}
	if r.paper != nil {
		doc["paper"] = *r.paper
	}
	if r.orientation != nil {
		doc["orientation"] = r.orientation.wire()
	}
	if r.margins != nil {
		doc["margins"] = *r.margins
	}
	if r.flow != nil {
		doc["flow"] = r.flow.wire()
	}
	if r.density != nil {
		doc["density"] = *r.density
	}
	if r.background != nil {
		doc["background"] = *r.background
	}
	if r.timeout != nil {
		doc["timeout"] = *r.timeout
	}

	if q := r.compileQuantize(); q != nil {
		doc["quantize"] = q
	}
	if p := r.compilePDF(); p != nil {
		doc["pdf"] = p
	}
	return doc
}

func (r *Request) compileQuantize() map[string]any {
	if r.colors == nil && r.palette == nil && r.dither == nil {
		return nil
	}
	q := map[string]any{}
	if r.colors != nil {
		q["colors"] = *r.colors
	}
	if r.palette != nil {
		if r.palette.preset != nil {
			q["palette"] = r.palette.preset.wire()
		} else {
			q["palette"] = r.palette.colors
		}
	}
	if r.dither != nil {
		q["dither"] = r.dither.wire()
	}
	return q
}

func (r *Request) compilePDF() map[string]any {
	p := map[string]any{}
	if r.title != nil {
		p["title"] = *r.title
	}
	if r.author != nil {
		p["author"] = *r.author
	}
	if r.subject != nil {
		p["subject"] = *r.subject
	}
	if r.keywords != nil {
		p["keywords"] = *r.keywords
	}
	if r.creator != nil {
		p["creator"] = *r.creator
	}
	if r.bookmarks != nil {
		p["bookmarks"] = *r.bookmarks
	}
	if r.pageNumbers != nil {
		p["page_numbers"] = *r.pageNumbers
	}
	if r.standard != nil {
		p["standard"] = r.standard.wire()
	}
	if w := r.watermark.compile(); w != nil {
		p["watermark"] = w
	}
	if len(r.attachments) > 0 {
		files := make([]map[string]any, 0, len(r.attachments))
		for _, a := range r.attachments {
			files = append(files, a.compile())
		}
		p["embedded_files"] = files
	}
	if len(r.barcodes) > 0 {
		codes := make([]map[string]any, 0, len(r.barcodes))
		for _, b := range r.barcodes {
			codes = append(codes, b.compile())
		}
		p["barcodes"] = codes
	}
	if r.mode != nil {
		p["mode"] = r.mode.wire()
	}
	if s := r.signature.compile(); s != nil {
		p["signature"] = s
	}
	if e := r.encryption.compile(); e != nil {
		p["encryption"] = e
	}
	if r.access != nil {
		p["accessibility"] = r.access.wire()
	}
	if r.linearize != nil {
		p["linearize"] = *r.linearize
	}
	if len(p) == 0 {
		return nil
	}
	return p
}

func (w *watermark) compile() map[string]any {
	if w == nil {
		return nil
	}
	m := map[string]any{}
	if w.text != nil {
		m["text"] = *w.text
	}
	if w.image != nil {
		m["image_data"] = *w.image
	}
	if w.opacity != nil {
		m["opacity"] = *w.opacity
	}
	if w.rotation != nil {
		m["rotation"] = *w.rotation
	}
	if w.color != nil {
		m["color"] = *w.color
	}
	if w.fontSize != nil {
		m["font_size"] = *w.fontSize
	}
	if w.scale != nil {
		m["scale"] = *w.scale
	}
	if w.layer != nil {
		m["layer"] = w.layer.wire()
	}
	if w.pages != nil {
		m["pages"] = *w.pages
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func (a Attachment) compile() map[string]any {
	m := map[string]any{
		"path":         a.Path,
		"data":         encode64(a.Data),
		"relationship": a.Relationship.wire(),
	}
	if a.MIMEType != "" {
		m["mime_type"] = a.MIMEType
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	return m
}

func (b *Barcode) compile() map[string]any {
	m := map[string]any{
		"type": b.typ.wire(),
		"data": b.data,
	}
	if b.x != nil {
		m["x"] = *b.x
	}
	if b.y != nil {
		m["y"] = *b.y
	}
	if b.width != nil {
		m["width"] = *b.width
	}
	if b.height != nil {
		m["height"] = *b.height
	}
	if b.anchor != nil {
		m["anchor"] = b.anchor.wire()
	}
	if b.foreground != nil {
		m["foreground"] = *b.foreground
	}
	if b.background != nil {
		m["background"] = *b.background
	}
	if b.drawBackground != nil {
		m["draw_background"] = *b.drawBackground
	}
	if b.pages != nil {
		m["pages"] = *b.pages
	}
	return m
}

func (s *signature) compile() map[string]any {
	if s == nil {
		return nil
	}
	m := map[string]any{}
	if s.certData != nil {
		m["certificate_data"] = *s.certData
	}
	if s.password != nil {
		m["password"] = *s.password
	}
	if s.signerName != nil {
		m["signer_name"] = *s.signerName
	}
	if s.reason != nil {
		m["reason"] = *s.reason
	}
	if s.location != nil {
		m["location"] = *s.location
	}
	if s.timestampURL != nil {
		m["timestamp_url"] = *s.timestampURL
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func (e *encryption) compile() map[string]any {
	if e == nil {
		return nil
	}
	m := map[string]any{}
	if e.userPassword != nil {
		m["user_password"] = *e.userPassword
	}
	if e.ownerPassword != nil {
		m["owner_password"] = *e.ownerPassword
	}
	if e.permissions != nil {
		m["permissions"] = *e.permissions
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
