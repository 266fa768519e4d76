package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloridaCatalogPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("filedAfter"))

		if page == "0" {
			// A full page signals more to come.
			fmt.Fprint(w, `{"dockets": [`)
			for i := 0; i < catalogPageSize; i++ {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, `{"docketNumber": "2024%04d-EI", "docketTitle": "Docket %d", "dateFiled": "2024-03-01"}`, i, i)
			}
			fmt.Fprint(w, `]}`)
			return
		}
		fmt.Fprint(w, `{"dockets": [{"docketNumber": "20249999-GU", "docketTitle": "Last", "dateFiled": "2024-06-15"}]}`)
	}))
	defer server.Close()

	c := NewFloridaCatalog()
	c.baseURL = server.URL

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records, err := c.Fetch(context.Background(), &since)
	require.NoError(t, err)

	require.Len(t, records, catalogPageSize+1)
	assert.Equal(t, "FL", records[0].StateCode)
	assert.Equal(t, "20249999-GU", records[len(records)-1].DocketNumber)
	require.NotNil(t, records[0].FilingDate)
	assert.Equal(t, 2024, records[0].FilingDate.Year())
}

func TestTexasCatalogStopsWhenNoMore(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"results": [{"controlNumber": "56211", "description": "Securitization", "openedDate": "2024-02-20"}], "hasMore": false}`)
	}))
	defer server.Close()

	c := NewTexasCatalog()
	c.baseURL = server.URL

	records, err := c.Fetch(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Len(t, records, 1)
	assert.Equal(t, "TX", records[0].StateCode)
	assert.Equal(t, "56211", records[0].DocketNumber)
}

func TestCatalogRegistryLookup(t *testing.T) {
	r := NewCatalogRegistry()

	fl, err := r.Lookup("fl")
	require.NoError(t, err)
	assert.Equal(t, "FL", fl.StateCode())

	_, err = r.Lookup("CA")
	assert.Error(t, err)
}

func TestRegistryKinds(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{KindAdminMonitor, KindRSSFeed, KindVideoChannel}, r.Kinds())

	_, err := r.Lookup("carrier_pigeon")
	assert.Error(t, err)
}
