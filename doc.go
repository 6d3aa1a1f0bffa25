// Package blobbify assembles Base64-encoded chunks into a single in-memory
// binary object.
//
// A [Buffer] accepts Base64 text, decodes each call into a chunk tagged with
// a position, and concatenates every chunk in position order the first time
// the result is requested. The assembled [Object] is cached until the next
// mutation.
//
// # Quick Start
//
// Append chunks in arrival order:
//
//	buf := blobbify.New(blobbify.WithMIMEType("image/png"))
//	for _, part := range parts {
//	    if err := buf.AppendBase64(part); err != nil {
//	        return err
//	    }
//	}
//	img := buf.Blob()
//
// Or place chunks explicitly when they arrive out of order:
//
//	err := buf.InsertBase64At(seq, part)
//	if errors.Is(err, blobbify.ErrDuplicatePosition) {
//	    // already have this one
//	}
//
// # Reference URLs
//
// [Buffer.ObjectURL] registers the assembled object with a [registry.Registry]
// and returns a blob: URL for it. The caller owns the URL and must revoke it:
//
//	url := buf.ObjectURL()
//	defer registry.Default.Revoke(url)
//
// Buffers are safe for concurrent use, but chunk order for AppendBase64 is
// the order in which calls acquire the buffer.
package blobbify
