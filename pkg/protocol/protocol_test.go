package protocol

import (
	"bytes"
	"testing"
)

func TestRequestResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	req := Request{
		Type:           RequestStartLink,
		ReadPattern:    "*.txt",
		BaseDirectory:  "/base",
		WriteDirectory: "/write",
	}
	if err := WriteRequest(&buf, req); err != nil {
		t.Fatal("WriteRequest failed:", err)
	}
	decoded, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal("ReadRequest failed:", err)
	}
	if decoded != req {
		t.Errorf("decoded request = %+v, want %+v", decoded, req)
	}

	buf.Reset()
	resp := MessageResponse("hello")
	if err := WriteResponse(&buf, resp); err != nil {
		t.Fatal("WriteResponse failed:", err)
	}
	decodedResp, err := ReadResponse(&buf)
	if err != nil {
		t.Fatal("ReadResponse failed:", err)
	}
	if decodedResp != resp {
		t.Errorf("decoded response = %+v, want %+v", decodedResp, resp)
	}
}

func TestSelfDelimitingStreamCarriesTwoMessages(t *testing.T) {
	var buf bytes.Buffer
	first := Request{Type: RequestPing}
	second := Request{Type: RequestShutdown}

	if err := WriteRequest(&buf, first); err != nil {
		t.Fatal("unable to write first request:", err)
	}
	if err := WriteRequest(&buf, second); err != nil {
		t.Fatal("unable to write second request:", err)
	}

	gotFirst, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal("unable to read first request:", err)
	}
	if gotFirst.Type != RequestPing {
		t.Errorf("first decoded type = %q, want %q", gotFirst.Type, RequestPing)
	}

	gotSecond, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal("unable to read second request:", err)
	}
	if gotSecond.Type != RequestShutdown {
		t.Errorf("second decoded type = %q, want %q", gotSecond.Type, RequestShutdown)
	}
}

func TestEchoRequestRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	req := Request{Type: RequestEcho, Echo: "hello there"}
	if err := WriteRequest(&buf, req); err != nil {
		t.Fatal("WriteRequest failed:", err)
	}
	decoded, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal("ReadRequest failed:", err)
	}
	if decoded != req {
		t.Errorf("decoded request = %+v, want %+v", decoded, req)
	}
}

func TestLinksResponseDoubleEncoding(t *testing.T) {
	type record struct {
		Pattern string `json:"pattern"`
	}
	records := []record{{Pattern: "*.txt"}, {Pattern: "*.bin"}}

	resp, err := LinksResponse(records)
	if err != nil {
		t.Fatal("LinksResponse failed:", err)
	}
	if resp.Type != ResponseLinks {
		t.Fatalf("response type = %q, want %q", resp.Type, ResponseLinks)
	}

	var buf bytes.Buffer
	if err := WriteResponse(&buf, resp); err != nil {
		t.Fatal("WriteResponse failed:", err)
	}
	decoded, err := ReadResponse(&buf)
	if err != nil {
		t.Fatal("ReadResponse failed:", err)
	}

	var decodedRecords []record
	if err := DecodeLinks(decoded, &decodedRecords); err != nil {
		t.Fatal("DecodeLinks failed:", err)
	}
	if len(decodedRecords) != 2 || decodedRecords[0].Pattern != "*.txt" || decodedRecords[1].Pattern != "*.bin" {
		t.Errorf("decoded records = %+v, want %+v", decodedRecords, records)
	}
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse("boom")
	if resp.Type != ResponseErrorMessage {
		t.Errorf("Type = %q, want %q", resp.Type, ResponseErrorMessage)
	}
	if resp.Message != "boom" {
		t.Errorf("Message = %q, want %q", resp.Message, "boom")
	}
}
