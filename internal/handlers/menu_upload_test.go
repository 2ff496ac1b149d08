package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseMultipartFoodItemRequest_PicksLastFeaturedValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("featured", "false")
	_ = writer.WriteField("featured", "true")
	_ = writer.WriteField("price", "99")
	_ = writer.Close()

	req := httptest.NewRequest("PUT", "/admin/api/menu/1", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	parsed, err := parseMultipartFoodItemRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartFoodItemRequest returned error: %v", err)
	}
	if !parsed.FeaturedSet || !parsed.Featured {
		t.Fatalf("expected featured=true, got %+v", parsed)
	}
	if !parsed.PriceSet || parsed.Price != 99 {
		t.Fatalf("expected price=99, got %+v", parsed)
	}
}

func TestParseMultipartFoodItemRequest_SingleFeaturedValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("featured", "false")
	_ = writer.Close()

	req := httptest.NewRequest("PUT", "/admin/api/menu/1", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	parsed, err := parseMultipartFoodItemRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartFoodItemRequest returned error: %v", err)
	}
	if !parsed.FeaturedSet || parsed.Featured {
		t.Fatalf("expected featured=false, got %+v", parsed)
	}
}

func TestParseMultipartFoodItemRequest_TrimsTextFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("name", "  Masala Dosa ")
	_ = writer.WriteField("category", " South Indian ")
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/admin/api/menu", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	parsed, err := parseMultipartFoodItemRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartFoodItemRequest returned error: %v", err)
	}
	if parsed.Name != "Masala Dosa" || parsed.Category != "South Indian" {
		t.Fatalf("expected trimmed fields, got %+v", parsed)
	}
	if parsed.ImageSet {
		t.Fatal("expected no image for form without file")
	}
}
