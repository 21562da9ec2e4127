package docpress

import "fmt"

// Format selects the output format of a render. The zero value is PDF.
type Format int

const (
	PDF Format = iota
	PNG
	JPEG
	BMP
	TGA
	QOI
	SVG
)

func (f Format) wire() string {
	switch f {
	case PDF:
		return "pdf"
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TGA:
		return "tga"
	case QOI:
		return "qoi"
	case SVG:
		return "svg"
	}
	panic(fmt.Sprintf("docpress: unknown Format %d", int(f)))
}

// Orientation controls the page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) wire() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	}
	panic(fmt.Sprintf("docpress: unknown Orientation %d", int(o)))
}

// Flow controls how content is split across pages.
type Flow int

const (
	FlowAuto Flow = iota
	FlowPaginate
	FlowContinuous
)

func (f Flow) wire() string {
	switch f {
	case FlowAuto:
		return "auto"
	case FlowPaginate:
		return "paginate"
	case FlowContinuous:
		return "continuous"
	}
	panic(fmt.Sprintf("docpress: unknown Flow %d", int(f)))
}

// Dither selects the dithering algorithm applied during color quantization.
type Dither int

const (
	DitherNone Dither = iota
	DitherFloydSteinberg
	DitherAtkinson
	DitherOrdered
)

func (d Dither) wire() string {
	switch d {
	case DitherNone:
		return "none"
	case DitherFloydSteinberg:
		return "floyd-steinberg"
	case DitherAtkinson:
		return "atkinson"
	case DitherOrdered:
		return "ordered"
	}
	panic(fmt.Sprintf("docpress: unknown Dither %d", int(d)))
}

// PalettePreset names a palette built into the service.
type PalettePreset int

const (
	PaletteAuto PalettePreset = iota
	PaletteBW
	PaletteGrayscale
	PaletteEInk
)

func (p PalettePreset) wire() string {
	switch p {
	case PaletteAuto:
		return "auto"
	case PaletteBW:
		return "bw"
	case PaletteGrayscale:
		return "grayscale"
	case PaletteEInk:
		return "eink"
	}
	panic(fmt.Sprintf("docpress: unknown PalettePreset %d", int(p)))
}

// WatermarkLayer places the watermark above or below the page content.
type WatermarkLayer int

const (
	LayerOver WatermarkLayer = iota
	LayerUnder
)

func (l WatermarkLayer) wire() string {
	switch l {
	case LayerOver:
		return "over"
	case LayerUnder:
		return "under"
	}
	panic(fmt.Sprintf("docpress: unknown WatermarkLayer %d", int(l)))
}

// PDFStandard selects a PDF/A conformance level.
type PDFStandard int

const (
	StandardNone PDFStandard = iota
	StandardPDFA2B
	StandardPDFA3B
)

func (s PDFStandard) wire() string {
	switch s {
	case StandardNone:
		return "none"
	case StandardPDFA2B:
		return "pdf/a-2b"
	case StandardPDFA3B:
		return "pdf/a-3b"
	}
	panic(fmt.Sprintf("docpress: unknown PDFStandard %d", int(s)))
}

// Relationship describes how an embedded file relates to the document.
// The zero value is RelUnspecified.
type Relationship int

const (
	RelUnspecified Relationship = iota
	RelAlternative
	RelSupplement
	RelData
	RelSource
)

func (r Relationship) wire() string {
	switch r {
	case RelUnspecified:
		return "unspecified"
	case RelAlternative:
		return "alternative"
	case RelSupplement:
		return "supplement"
	case RelData:
		return "data"
	case RelSource:
		return "source"
	}
	panic(fmt.Sprintf("docpress: unknown Relationship %d", int(r)))
}

// BarcodeType selects the barcode symbology.
type BarcodeType int

const (
	BarcodeQR BarcodeType = iota
	BarcodeCode128
	BarcodeEAN13
	BarcodeUPCA
	BarcodeCode39
)

func (t BarcodeType) wire() string {
	switch t {
	case BarcodeQR:
		return "qr"
	case BarcodeCode128:
		return "code128"
	case BarcodeEAN13:
		return "ean13"
	case BarcodeUPCA:
		return "upca"
	case BarcodeCode39:
		return "code39"
	}
	panic(fmt.Sprintf("docpress: unknown BarcodeType %d", int(t)))
}

// BarcodeAnchor picks the page corner a barcode position is measured from.
type BarcodeAnchor int

const (
	AnchorTopLeft BarcodeAnchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

func (a BarcodeAnchor) wire() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	}
	panic(fmt.Sprintf("docpress: unknown BarcodeAnchor %d", int(a)))
}

// PDFMode chooses between vector and rasterized PDF output.
type PDFMode int

const (
	ModeAuto PDFMode = iota
	ModeVector
	ModeRaster
)

func (m PDFMode) wire() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeVector:
		return "vector"
	case ModeRaster:
		return "raster"
	}
	panic(fmt.Sprintf("docpress: unknown PDFMode %d", int(m)))
}

// AccessibilityLevel selects the tagging level for accessible PDFs.
type AccessibilityLevel int

const (
	AccessibilityNone AccessibilityLevel = iota
	AccessibilityBasic
	AccessibilityPDFUA1
)

func (a AccessibilityLevel) wire() string {
	switch a {
	case AccessibilityNone:
		return "none"
	case AccessibilityBasic:
		return "basic"
	case AccessibilityPDFUA1:
		return "pdf/ua-1"
	}
	panic(fmt.Sprintf("docpress: unknown AccessibilityLevel %d", int(a)))
}
