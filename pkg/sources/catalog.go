package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// CatalogClient fetches the docket catalogue from one state
// commission's public search API. Pagination and rate limits are
// client-private.
type CatalogClient interface {
	StateCode() string
	Fetch(ctx context.Context, since *time.Time) ([]models.DocketRecord, error)
}

// CatalogRegistry dispatches catalogue clients by state code.
type CatalogRegistry struct {
	clients map[string]CatalogClient
}

// NewCatalogRegistry builds a registry with the supported states.
func NewCatalogRegistry() *CatalogRegistry {
	r := &CatalogRegistry{clients: make(map[string]CatalogClient)}
	r.Register(NewFloridaCatalog())
	r.Register(NewTexasCatalog())
	return r
}

// Register adds or replaces the client for its state.
func (r *CatalogRegistry) Register(c CatalogClient) {
	r.clients[strings.ToUpper(c.StateCode())] = c
}

// Lookup returns the client for a state code.
func (r *CatalogRegistry) Lookup(stateCode string) (CatalogClient, error) {
	c, ok := r.clients[strings.ToUpper(stateCode)]
	if !ok {
		return nil, fmt.Errorf("no docket catalogue client for state %q", stateCode)
	}
	return c, nil
}

// States lists the registered state codes.
func (r *CatalogRegistry) States() []string {
	states := make([]string, 0, len(r.clients))
	for s := range r.clients {
		states = append(states, s)
	}
	return states
}

const (
	catalogPageSize = 100
	// pageDelay spaces paginated requests to stay under vendor limits.
	pageDelay = 500 * time.Millisecond
	// maxCatalogPages is a runaway-pagination guard.
	maxCatalogPages = 200
)

// FloridaCatalog queries the Florida PSC clerk's docket search API.
type FloridaCatalog struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewFloridaCatalog creates a FloridaCatalog against the public API.
func NewFloridaCatalog() *FloridaCatalog {
	return &FloridaCatalog{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    "https://www.floridapsc.com/api/dockets",
		logger:     slog.Default().With("catalog", "FL"),
	}
}

// StateCode implements CatalogClient.
func (c *FloridaCatalog) StateCode() string { return "FL" }

type floridaDocket struct {
	DocketNumber string   `json:"docketNumber"`
	Title        string   `json:"docketTitle"`
	DocketType   string   `json:"docketType"`
	Industry     string   `json:"industryCode"`
	Status       string   `json:"status"`
	FilingDate   string   `json:"dateFiled"`
	Parties      []string `json:"parties"`
}

type floridaPage struct {
	Dockets []floridaDocket `json:"dockets"`
	Total   int             `json:"totalCount"`
}

// Fetch implements CatalogClient.
func (c *FloridaCatalog) Fetch(ctx context.Context, since *time.Time) ([]models.DocketRecord, error) {
	var records []models.DocketRecord
	for page := 0; page < maxCatalogPages; page++ {
		q := url.Values{
			"pageSize": {strconv.Itoa(catalogPageSize)},
			"page":     {strconv.Itoa(page)},
		}
		if since != nil {
			q.Set("filedAfter", since.Format("2006-01-02"))
		}

		var body floridaPage
		if err := getJSON(ctx, c.httpClient, c.baseURL+"?"+q.Encode(), &body); err != nil {
			return nil, fmt.Errorf("florida docket search page %d: %w", page, err)
		}
		for _, d := range body.Dockets {
			records = append(records, models.DocketRecord{
				StateCode:    "FL",
				DocketNumber: strings.TrimSpace(d.DocketNumber),
				Title:        d.Title,
				DocketType:   d.DocketType,
				Industry:     d.Industry,
				Status:       d.Status,
				FilingDate:   parseCatalogDate(d.FilingDate),
				Parties:      d.Parties,
			})
		}
		if len(body.Dockets) < catalogPageSize {
			break
		}
		if err := sleepCtx(ctx, pageDelay); err != nil {
			return nil, err
		}
	}
	c.logger.Info("florida catalogue fetched", "records", len(records))
	return records, nil
}

// TexasCatalog queries the PUCT interchange filings API.
type TexasCatalog struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewTexasCatalog creates a TexasCatalog against the public API.
func NewTexasCatalog() *TexasCatalog {
	return &TexasCatalog{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    "https://interchange.puc.texas.gov/api/search/controls",
		logger:     slog.Default().With("catalog", "TX"),
	}
}

// StateCode implements CatalogClient.
func (c *TexasCatalog) StateCode() string { return "TX" }

type texasControl struct {
	ControlNumber string `json:"controlNumber"`
	Description   string `json:"description"`
	ControlType   string `json:"controlType"`
	Utility       string `json:"utilityType"`
	Status        string `json:"status"`
	OpenedDate    string `json:"openedDate"`
}

type texasPage struct {
	Results []texasControl `json:"results"`
	HasMore bool           `json:"hasMore"`
}

// Fetch implements CatalogClient.
func (c *TexasCatalog) Fetch(ctx context.Context, since *time.Time) ([]models.DocketRecord, error) {
	var records []models.DocketRecord
	offset := 0
	for page := 0; page < maxCatalogPages; page++ {
		q := url.Values{
			"limit":  {strconv.Itoa(catalogPageSize)},
			"offset": {strconv.Itoa(offset)},
		}
		if since != nil {
			q.Set("openedAfter", since.Format("2006-01-02"))
		}

		var body texasPage
		if err := getJSON(ctx, c.httpClient, c.baseURL+"?"+q.Encode(), &body); err != nil {
			return nil, fmt.Errorf("texas control search offset %d: %w", offset, err)
		}
		for _, d := range body.Results {
			records = append(records, models.DocketRecord{
				StateCode:    "TX",
				DocketNumber: strings.TrimSpace(d.ControlNumber),
				Title:        d.Description,
				DocketType:   d.ControlType,
				Industry:     d.Utility,
				Status:       d.Status,
				FilingDate:   parseCatalogDate(d.OpenedDate),
			})
		}
		if !body.HasMore {
			break
		}
		offset += catalogPageSize
		if err := sleepCtx(ctx, pageDelay); err != nil {
			return nil, err
		}
	}
	c.logger.Info("texas catalogue fetched", "records", len(records))
	return records, nil
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func parseCatalogDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
