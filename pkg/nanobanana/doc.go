// Package nanobanana provides a Go client for the Gemini image generation
// API (the "Nano Banana" models).
//
// The client speaks the generateContent REST protocol directly: one JSON
// POST per image, the API key in the query string, inline base64 payloads
// in both directions. The reported MIME type of a generated image is not
// trusted; sniff the real format with Image.Format.
//
// # Basic Usage
//
//	key, err := nanobanana.ResolveAPIKey("")
//	if err != nil {
//	    return err
//	}
//	client := nanobanana.NewClient(key)
//
//	resp, err := client.Generate(ctx, &nanobanana.GenerateRequest{
//	    Prompt:      "A cute robot holding a banana",
//	    Model:       nanobanana.ModelPro,
//	    AspectRatio: nanobanana.AspectRatio1x1,
//	    Size:        nanobanana.Size2K,
//	})
//	if err != nil {
//	    return err
//	}
//	img := resp.Images[0]
//	format := img.Format() // sniffed from the bytes, not the reported MIME
//
// # Reference Images
//
// Up to MaxReferenceImages images can guide the render (style transfer,
// character consistency). LoadReference sniffs the MIME type from the file
// content:
//
//	ref, err := nanobanana.LoadReference("character.png")
//	if err != nil {
//	    return err
//	}
//	req.References = append(req.References, ref)
//
// # Error Handling
//
// API rejections surface as *Error, structurally broken responses as
// *ProtocolError with the raw body attached:
//
//	resp, err := client.Generate(ctx, req)
//	if err != nil {
//	    if e, ok := nanobanana.AsError(err); ok && e.IsRateLimit() {
//	        // Back off
//	    }
//	    if pe, ok := nanobanana.AsProtocolError(err); ok {
//	        os.Stderr.Write(pe.Raw)
//	    }
//	    return err
//	}
//
// A response without images is not an error at this layer; the model
// sometimes answers with text explaining a refusal. Check len(resp.Images)
// and surface resp.Texts to the user.
//
// # Configuration
//
//	client := nanobanana.NewClient(key,
//	    nanobanana.WithBaseURL("https://generativelanguage.googleapis.com"),
//	    nanobanana.WithTimeout(180*time.Second),
//	)
package nanobanana
