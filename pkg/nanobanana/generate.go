package nanobanana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Generate runs one image generation call and parses the result.
//
// The prompt always travels as the first content part, followed by one
// inline-data part per reference image in request order. Both output
// modalities are requested; the model may answer with text only, in which
// case the response carries no Images and the Texts explain why.
//
// Example:
//
//	resp, err := client.Generate(ctx, &nanobanana.GenerateRequest{
//	    Prompt:      "A cute robot holding a banana",
//	    Model:       nanobanana.ModelPro,
//	    AspectRatio: nanobanana.AspectRatio16x9,
//	    Size:        nanobanana.Size2K,
//	})
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("nanobanana: prompt is required")
	}
	if len(req.References) > MaxReferenceImages {
		return nil, fmt.Errorf("nanobanana: at most %d reference images per request, got %d",
			MaxReferenceImages, len(req.References))
	}

	model := req.Model
	if model == "" {
		model = ModelPro
	}

	parts := []wirePart{{Text: req.Prompt}}
	for _, ref := range req.References {
		parts = append(parts, wirePart{
			InlineData: &wireInlineData{
				MIMEType: ref.MIME,
				Data:     base64.StdEncoding.EncodeToString(ref.Data),
			},
		})
	}

	payload := &wireRequest{
		Contents: []wireContent{{Parts: parts}},
		GenerationConfig: &wireGenConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			ImageConfig: &wireImageConfig{
				AspectRatio: req.AspectRatio,
				ImageSize:   req.Size,
			},
		},
	}

	body, err := c.http.post(ctx, model, payload)
	if err != nil {
		return nil, err
	}
	return parseResponse(body)
}

// parseResponse decodes a generateContent response body. Only the first
// candidate is read; its parts are collected in order.
func parseResponse(body []byte) (*GenerateResponse, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &ProtocolError{Message: fmt.Sprintf("malformed response: %v", err), Raw: body}
	}
	if len(wire.Candidates) == 0 {
		return nil, &ProtocolError{Message: "no candidates in response", Raw: body}
	}

	content := wire.Candidates[0].Content
	if content == nil {
		return nil, &ProtocolError{Message: "candidate has no content", Raw: body}
	}

	resp := &GenerateResponse{
		ModelVersion: wire.ModelVersion,
		Usage:        wire.UsageMetadata,
		Raw:          body,
	}
	for _, part := range content.Parts {
		switch {
		case part.InlineData != nil:
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, &ProtocolError{Message: fmt.Sprintf("decode image data: %v", err), Raw: body}
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			resp.Images = append(resp.Images, Image{MIME: mime, Data: data})
		case part.Text != "":
			resp.Texts = append(resp.Texts, part.Text)
		}
	}
	return resp, nil
}
