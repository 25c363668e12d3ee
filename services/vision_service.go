package services

import (
	"MenuPlus/config/environment"
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// VisionService extracts text lines from photographed menus using the Google
// Cloud Vision API.
type VisionService struct {
	Service *vision.Service
}

// NewVisionService creates the Vision API client with the configured API key.
func NewVisionService(ctx context.Context) (*VisionService, error) {
	svc, err := vision.NewService(ctx, option.WithAPIKey(environment.GetVisionAPIKey()))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionService{Service: svc}, nil
}

// ExtractLines runs document text detection over a base64-encoded image and
// returns the detected text as trimmed, non-empty lines. An empty slice means
// no text was found; that is not an error.
func (s *VisionService) ExtractLines(ctx context.Context, base64Image string) ([]string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{Content: base64Image},
				Features: []*vision.Feature{
					{Type: "DOCUMENT_TEXT_DETECTION"},
				},
			},
		},
	}

	resp, err := s.Service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("vision annotate request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return []string{}, nil
	}

	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return nil, fmt.Errorf("vision annotate failed: %s", annotated.Error.Message)
	}
	if annotated.FullTextAnnotation == nil {
		return []string{}, nil
	}

	lines := []string{}
	for _, line := range strings.Split(annotated.FullTextAnnotation.Text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
