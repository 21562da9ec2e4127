// Package docpress is the Go client SDK for the docpress rendering service.
//
// The service renders HTML or remote pages into PDF, raster images (PNG,
// JPEG, BMP, TGA, QOI) or SVG, with optional color quantization and PDF
// post-processing (metadata, watermarks, embedded files, barcodes, signing,
// encryption). This package describes a render as a chainable [Request],
// compiles it into the service's wire document and classifies the response.
//
// # Quick start
//
//	client := docpress.New("http://localhost:8080")
//
//	out, err := client.Render(context.Background(),
//		docpress.FromHTML("<h1>Invoice</h1>").
//			Paper("A4").
//			Orientation(docpress.Portrait).
//			MarginsMM(20, 15, 20, 15))
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("invoice.pdf", out, 0o644)
//
// Mutators can be chained in any order and any subset; an unset field is
// omitted from the payload and the service applies its own default. The SDK
// performs no range checks: documented ranges such as 2-256 quantization
// colors are enforced by the service, which is authoritative.
//
// # Error handling
//
// Render returns a *[ConnectionError] when the exchange could not complete
// (DNS, refused connection, timeout, canceled context) and a *[ServerError]
// when the service answered with a failure status:
//
//	out, err := client.Render(ctx, req)
//	if err != nil {
//		var srvErr *docpress.ServerError
//		if errors.As(err, &srvErr) {
//			log.Printf("rejected with %d: %s", srvErr.Status, srvErr.Message)
//		}
//	}
//
// Neither kind is retried by the SDK; retry policy belongs to the caller.
//
// # Caching
//
// Repeated renders of identical requests can be served from an optional
// cache keyed by the compiled payload:
//
//	client := docpress.New(base,
//		docpress.WithCache(docpress.NewMemoryStore(), 10*time.Minute))
//
// [NewRedisStore] shares the cache across processes.
//
// # Thread safety
//
// A [Client] is safe for concurrent use. A [Request] is not; build one per
// render.
package docpress
