package docpress

import "testing"

func TestRequest_MutatorsReturnSameInstance(t *testing.T) {
	req := FromHTML("x")
	if req.Format(PNG) != req || req.Width(10) != req || req.Colors(4) != req ||
		req.WatermarkText("w") != req || req.AddBarcode(NewBarcode(BarcodeQR, "q")) != req {
		t.Fatalf("mutators must return the receiver for chaining")
	}

	b := NewBarcode(BarcodeQR, "q")
	if b.Position(1, 2) != b || b.Anchor(AnchorTopRight) != b {
		t.Fatalf("barcode setters must return the receiver for chaining")
	}
}

func TestRequest_ListsAreAdditive(t *testing.T) {
	req := FromHTML("x").
		AddAttachment(Attachment{Path: "a"}).
		AddAttachment(Attachment{Path: "b"}).
		AddBarcode(NewBarcode(BarcodeQR, "1")).
		AddBarcode(NewBarcode(BarcodeQR, "2")).
		AddBarcode(NewBarcode(BarcodeQR, "3"))

	if len(req.attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(req.attachments))
	}
	if req.attachments[0].Path != "a" || req.attachments[1].Path != "b" {
		t.Fatalf("attachments must keep insertion order")
	}
	if len(req.barcodes) != 3 {
		t.Fatalf("expected 3 barcodes, got %d", len(req.barcodes))
	}
}

func TestRequest_LastWriteWinsForScalars(t *testing.T) {
	doc := FromHTML("x").Paper("A4").Paper("letter").Timeout(5).Timeout(9).compile()
	if doc["paper"] != "letter" {
		t.Fatalf("expected last paper value, got %v", doc["paper"])
	}
	if doc["timeout"] != 9 {
		t.Fatalf("expected last timeout value, got %v", doc["timeout"])
	}
}

func TestRequest_CompileDoesNotConsume(t *testing.T) {
	req := FromHTML("x").Colors(8)
	before := req.compile()

	// Compilation only reads; the builder can still be extended afterwards.
	req.Dither(DitherOrdered)
	after := req.compile()

	if _, ok := before["quantize"].(map[string]any)["dither"]; ok {
		t.Fatalf("earlier compile result must not see later mutation")
	}
	if after["quantize"].(map[string]any)["dither"] != "ordered" {
		t.Fatalf("later compile must see the new field")
	}
}
