package protocol

import (
	"encoding/json"
	"fmt"
	"io"
)

// singleByteReader hands the JSON decoder at most one byte per Read, so the
// decoder stops at the end of the first value instead of buffering bytes
// that belong to whatever follows it on the stream.
type singleByteReader struct{ r io.Reader }

func (s singleByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return s.r.Read(p)
}

// ReadRequest decodes exactly one Request from r, relying on encoding/json's
// own self-delimiting grammar rather than any additional length framing.
func ReadRequest(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(singleByteReader{r}).Decode(&req); err != nil {
		return Request{}, fmt.Errorf("unable to decode request: %w", err)
	}
	return req, nil
}

// WriteRequest encodes req as the single JSON object written to w.
func WriteRequest(w io.Writer, req Request) error {
	if err := json.NewEncoder(w).Encode(req); err != nil {
		return fmt.Errorf("unable to encode request: %w", err)
	}
	return nil
}

// ReadResponse decodes exactly one Response from r.
func ReadResponse(r io.Reader) (Response, error) {
	var resp Response
	if err := json.NewDecoder(singleByteReader{r}).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("unable to decode response: %w", err)
	}
	return resp, nil
}

// WriteResponse encodes resp as the single JSON object written to w.
func WriteResponse(w io.Writer, resp Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("unable to encode response: %w", err)
	}
	return nil
}
