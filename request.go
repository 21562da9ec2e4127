package docpress

import "fmt"

// Request accumulates the configuration for a single render. Create one with
// FromHTML or FromURL, chain any subset of mutators in any order, then pass it
// to Client.Render. Every optional field is either unset (omitted from the
// payload) or set to the last value given; out-of-range values are passed
// through unchecked because the service is authoritative for validation.
//
// A Request is not safe for concurrent mutation and is meant for exactly one
// render, though rendering it repeatedly sends the same payload each time.
type Request struct {
	html string
	url  string

	format      Format
	width       *int
	height      *int
	paper       *string
	orientation *Orientation
	margins     *string
	flow        *Flow
	density     *float64
	background  *string
	timeout     *int

	colors  *int
	palette *palette
	dither  *Dither

	title       *string
	author      *string
	subject     *string
	keywords    *string
	creator     *string
	bookmarks   *bool
	pageNumbers *bool
	standard    *PDFStandard
	watermark   *watermark
	attachments []Attachment
	barcodes    []*Barcode
	mode        *PDFMode
	signature   *signature
	encryption  *encryption
	access      *AccessibilityLevel
	linearize   *bool
}

// palette is either a named preset or a literal ordered color list, never both.
type palette struct {
	preset *PalettePreset
	colors []string
}

type watermark struct {
	text     *string
	image    *string
	opacity  *float64
	rotation *float64
	color    *string
	fontSize *float64
	scale    *float64
	layer    *WatermarkLayer
	pages    *string
}

type signature struct {
	certData     *string
	password     *string
	signerName   *string
	reason       *string
	location     *string
	timestampURL *string
}

type encryption struct {
	userPassword  *string
	ownerPassword *string
	permissions   *string
}

// Attachment is one file embedded into the rendered PDF. Path and Data are
// required by the service; MIMEType and Description are optional and omitted
// from the payload when empty.
type Attachment struct {
	Path         string
	Data         []byte
	MIMEType     string
	Description  string
	Relationship Relationship
}

// Barcode is stamped onto rendered PDF pages. Build one with NewBarcode and
// chain the optional setters; position and size are in points measured from
// the anchor corner.
type Barcode struct {
	typ            BarcodeType
	data           string
	x              *float64
	y              *float64
	width          *float64
	height         *float64
	anchor         *BarcodeAnchor
	foreground     *string
	background     *string
	drawBackground *bool
	pages          *string
}

func ptr[T any](v T) *T { return &v }

// FromHTML starts a render request for inline markup.
func FromHTML(html string) *Request {
	return &Request{html: html}
}

// FromURL starts a render request for a remote page.
func FromURL(url string) *Request {
	return &Request{url: url}
}

// Format sets the output format. The default is PDF.
func (r *Request) Format(f Format) *Request {
	r.format = f
	return r
}

// Width sets the viewport width in pixels.
func (r *Request) Width(px int) *Request {
	r.width = ptr(px)
	return r
}

// Height sets the viewport height in pixels.
func (r *Request) Height(px int) *Request {
	r.height = ptr(px)
	return r
}

// Paper sets the paper size by name, e.g. "A4" or "letter".
func (r *Request) Paper(name string) *Request {
	r.paper = ptr(name)
	return r
}

// Orientation sets the page orientation.
func (r *Request) Orientation(o Orientation) *Request {
	r.orientation = ptr(o)
	return r
}

// Margins sets the page margins, either a preset name or "T,R,B,L" in
// millimeters.
func (r *Request) Margins(spec string) *Request {
	r.margins = ptr(spec)
	return r
}

// MarginsMM sets explicit top/right/bottom/left margins in millimeters.
func (r *Request) MarginsMM(top, right, bottom, left float64) *Request {
	return r.Margins(fmt.Sprintf("%g,%g,%g,%g", top, right, bottom, left))
}

// Flow sets the content flow mode.
func (r *Request) Flow(f Flow) *Request {
	r.flow = ptr(f)
	return r
}

// Density sets the output density in DPI.
func (r *Request) Density(dpi float64) *Request {
	r.density = ptr(dpi)
	return r
}

// Background sets the page background color.
func (r *Request) Background(color string) *Request {
	r.background = ptr(color)
	return r
}

// Timeout sets the page load timeout in seconds.
func (r *Request) Timeout(seconds int) *Request {
	r.timeout = ptr(seconds)
	return r
}

// Colors sets the quantization color count. The service accepts 2-256.
func (r *Request) Colors(n int) *Request {
	r.colors = ptr(n)
	return r
}

// Palette selects a named palette preset, replacing any previously set
// palette, including a literal color list.
func (r *Request) Palette(p PalettePreset) *Request {
	r.palette = &palette{preset: ptr(p)}
	return r
}

// PaletteColors sets a literal ordered palette of hex color strings, replacing
// any previously set palette, including a preset. The strings are sent to the
// service verbatim.
func (r *Request) PaletteColors(hex ...string) *Request {
	r.palette = &palette{colors: append([]string(nil), hex...)}
	return r
}

// Dither selects the dithering algorithm.
func (r *Request) Dither(d Dither) *Request {
	r.dither = ptr(d)
	return r
}

// Title sets the PDF document title.
func (r *Request) Title(s string) *Request {
	r.title = ptr(s)
	return r
}

// Author sets the PDF document author.
func (r *Request) Author(s string) *Request {
	r.author = ptr(s)
	return r
}

// Subject sets the PDF document subject.
func (r *Request) Subject(s string) *Request {
	r.subject = ptr(s)
	return r
}

// Keywords sets the PDF document keywords.
func (r *Request) Keywords(s string) *Request {
	r.keywords = ptr(s)
	return r
}

// Creator sets the PDF creator metadata field.
func (r *Request) Creator(s string) *Request {
	r.creator = ptr(s)
	return r
}

// Bookmarks toggles generation of PDF bookmarks from document headings.
func (r *Request) Bookmarks(on bool) *Request {
	r.bookmarks = ptr(on)
	return r
}

// PageNumbers toggles stamped page numbers.
func (r *Request) PageNumbers(on bool) *Request {
	r.pageNumbers = ptr(on)
	return r
}

// Standard selects a PDF/A conformance level.
func (r *Request) Standard(s PDFStandard) *Request {
	r.standard = ptr(s)
	return r
}

func (r *Request) wm() *watermark {
	if r.watermark == nil {
		r.watermark = &watermark{}
	}
	return r.watermark
}

// WatermarkText sets the watermark text.
func (r *Request) WatermarkText(s string) *Request {
	r.wm().text = ptr(s)
	return r
}

// WatermarkImage sets a watermark image from raw bytes; the SDK base64-encodes
// them for transport.
func (r *Request) WatermarkImage(data []byte) *Request {
	r.wm().image = ptr(encode64(data))
	return r
}

// WatermarkOpacity sets the watermark opacity. The service expects 0.0-1.0.
func (r *Request) WatermarkOpacity(o float64) *Request {
	r.wm().opacity = ptr(o)
	return r
}

// WatermarkRotation sets the watermark rotation in degrees.
func (r *Request) WatermarkRotation(deg float64) *Request {
	r.wm().rotation = ptr(deg)
	return r
}

// WatermarkColor sets the watermark text color.
func (r *Request) WatermarkColor(color string) *Request {
	r.wm().color = ptr(color)
	return r
}

// WatermarkFontSize sets the watermark font size in points.
func (r *Request) WatermarkFontSize(pt float64) *Request {
	r.wm().fontSize = ptr(pt)
	return r
}

// WatermarkScale sets the watermark image scale factor.
func (r *Request) WatermarkScale(s float64) *Request {
	r.wm().scale = ptr(s)
	return r
}

// WatermarkLayer places the watermark over or under the page content.
func (r *Request) WatermarkLayer(l WatermarkLayer) *Request {
	r.wm().layer = ptr(l)
	return r
}

// WatermarkPages restricts the watermark to a page-range expression such as
// "1-3,5".
func (r *Request) WatermarkPages(pages string) *Request {
	r.wm().pages = ptr(pages)
	return r
}

// AddAttachment appends one embedded file. Attachments keep their insertion
// order in the rendered PDF.
func (r *Request) AddAttachment(a Attachment) *Request {
	r.attachments = append(r.attachments, a)
	return r
}

// AddBarcode appends one barcode. Barcodes keep their insertion order.
func (r *Request) AddBarcode(b *Barcode) *Request {
	r.barcodes = append(r.barcodes, b)
	return r
}

// Mode chooses between vector and rasterized PDF output.
func (r *Request) Mode(m PDFMode) *Request {
	r.mode = ptr(m)
	return r
}

func (r *Request) sig() *signature {
	if r.signature == nil {
		r.signature = &signature{}
	}
	return r.signature
}

// Certificate sets the signing certificate (raw bytes, base64-encoded for
// transport) and its password.
func (r *Request) Certificate(data []byte, password string) *Request {
	s := r.sig()
	s.certData = ptr(encode64(data))
	s.password = ptr(password)
	return r
}

// SignerName sets the digital signature signer name.
func (r *Request) SignerName(s string) *Request {
	r.sig().signerName = ptr(s)
	return r
}

// SignReason sets the digital signature reason.
func (r *Request) SignReason(s string) *Request {
	r.sig().reason = ptr(s)
	return r
}

// SignLocation sets the digital signature location.
func (r *Request) SignLocation(s string) *Request {
	r.sig().location = ptr(s)
	return r
}

// TimestampURL sets the timestamp authority used when signing.
func (r *Request) TimestampURL(url string) *Request {
	r.sig().timestampURL = ptr(url)
	return r
}

func (r *Request) enc() *encryption {
	if r.encryption == nil {
		r.encryption = &encryption{}
	}
	return r.encryption
}

// UserPassword sets the PDF user (open) password.
func (r *Request) UserPassword(s string) *Request {
	r.enc().userPassword = ptr(s)
	return r
}

// OwnerPassword sets the PDF owner password.
func (r *Request) OwnerPassword(s string) *Request {
	r.enc().ownerPassword = ptr(s)
	return r
}

// Permissions sets the PDF permission string, e.g. "print,copy".
func (r *Request) Permissions(s string) *Request {
	r.enc().permissions = ptr(s)
	return r
}

// Accessibility selects the accessible-PDF tagging level.
func (r *Request) Accessibility(a AccessibilityLevel) *Request {
	r.access = ptr(a)
	return r
}

// Linearize toggles linearized ("fast web view") PDF output.
func (r *Request) Linearize(on bool) *Request {
	r.linearize = ptr(on)
	return r
}

// NewBarcode starts a barcode with the required symbology and payload.
func NewBarcode(t BarcodeType, data string) *Barcode {
	return &Barcode{typ: t, data: data}
}

// Position sets the barcode position in points from the anchor corner.
func (b *Barcode) Position(x, y float64) *Barcode {
	b.x = ptr(x)
	b.y = ptr(y)
	return b
}

// Size sets the barcode width and height in points.
func (b *Barcode) Size(width, height float64) *Barcode {
	b.width = ptr(width)
	b.height = ptr(height)
	return b
}

// Anchor picks the corner the position is measured from.
func (b *Barcode) Anchor(a BarcodeAnchor) *Barcode {
	b.anchor = ptr(a)
	return b
}

// Foreground sets the barcode foreground color.
func (b *Barcode) Foreground(color string) *Barcode {
	b.foreground = ptr(color)
	return b
}

// Background sets the barcode background color.
func (b *Barcode) Background(color string) *Barcode {
	b.background = ptr(color)
	return b
}

// DrawBackground toggles filling the barcode background.
func (b *Barcode) DrawBackground(on bool) *Barcode {
	b.drawBackground = ptr(on)
	return b
}

// Pages restricts the barcode to a page-range expression such as "1,3-4".
func (b *Barcode) Pages(pages string) *Barcode {
	b.pages = ptr(pages)
	return b
}
