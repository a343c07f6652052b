package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/celarium/celarium/config"
	"github.com/celarium/celarium/pkg/models"
)

var _ models.DetectionSource = &EntitySource{}

// entityLabels is the candidate label set passed to the entity model.
var entityLabels = []string{"person", "physical address", "organization", "date of birth"}

// EntitySource detects spans with the external entity-extraction service.
// Calls are bounded by the configured timeout and retried; any failure is
// surfaced to the Detector, which degrades to rule-only findings.
type EntitySource struct {
	client    *http.Client
	serverURL string
	threshold float64
}

func NewEntitySource(cfg *config.Config) *EntitySource {
	return &EntitySource{
		client:    NewRetryableHTTPClient(2, cfg.NLP.Timeout),
		serverURL: cfg.NLP.ServerURL,
		threshold: cfg.Detection.Threshold,
	}
}

func (s *EntitySource) Name() string {
	return "entity_model"
}

func (s *EntitySource) Detect(ctx context.Context, text string) ([]models.Span, error) {
	response, err := s.callEntityService(ctx, text)
	if err != nil {
		return nil, models.NewDetectionError(s.Name(), err)
	}

	var spans []models.Span
	for _, record := range response.Texts {
		for _, e := range record.Entities {
			if e.Score < s.threshold {
				continue
			}
			if e.Start < 0 || e.End > len(text) || e.Start >= e.End {
				log.Warnf("entity model returned invalid span [%d, %d)", e.Start, e.End)
				continue
			}
			spans = append(spans, models.Span{
				Start:    e.Start,
				End:      e.End,
				Category: models.ParseCategory(e.Label),
				Score:    e.Score,
			})
		}
	}
	return spans, nil
}

func (s *EntitySource) callEntityService(
	ctx context.Context,
	text string,
) (models.EntityResponse, error) {
	url := s.serverURL + "/entities"

	requestBody := models.EntityRequest{
		Texts: []models.EntityRequestRecord{
			{
				UUID:     uuid.New().String(),
				Text:     text,
				Language: "en",
			},
		},
		Labels:    entityLabels,
		Threshold: s.threshold,
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return models.EntityResponse{}, err
	}

	var response models.EntityResponse

	// Retry POST request to the entity service 3 times with 1 second delay.
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(
				ctx,
				http.MethodPost,
				url,
				bytes.NewBuffer(jsonBody),
			)
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("entity service returned status %d", resp.StatusCode)
			}

			bodyBytes, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			return json.Unmarshal(bodyBytes, &response)
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.Context(ctx),
	)

	if err != nil {
		return models.EntityResponse{}, err
	}

	return response, nil
}
