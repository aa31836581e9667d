package flightapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

const statusPayload = `{
  "FlightStatusResource": {
    "Flights": {
      "Flight": [
        {
          "Departure": {
            "AirportCode": "HAM",
            "ScheduledTimeLocal": {"DateTime": "2026-02-28T10:00"},
            "EstimatedTimeLocal": {"DateTime": "2026-02-28T11:30"},
            "Terminal": {"Name": 1, "Gate": "A12"}
          },
          "Arrival": {
            "AirportCode": "JFK",
            "ScheduledTimeLocal": {"DateTime": "2026-02-28T14:50"},
            "EstimatedTimeLocal": {"DateTime": "2026-02-28T16:20"},
            "Terminal": {"Name": "4"}
          },
          "MarketingCarrier": {"AirlineID": "LH", "FlightNumber": 456},
          "Equipment": {"AircraftCode": "74H"},
          "FlightStatus": {"Code": "DL", "Definition": "Flight Delayed"}
        }
      ]
    }
  }
}`

// newTestServer serves a token endpoint plus the given status handler.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fmt.Fprint(w, `{"access_token": "test-token", "expires_in": 36000, "token_type": "bearer"}`)
	})
	mux.HandleFunc("/", handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	tm := NewTokenManager("id", "secret", srv.URL+"/oauth/token")
	client := NewClient("id", "secret",
		WithBaseURL(srv.URL),
		WithTokenManager(tm),
		WithRequestInterval(0),
		WithMaxRetries(0),
	)
	return srv, client
}

func TestFlightStatus_ParsesRecord(t *testing.T) {
	var gotAuth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, statusPayload)
	})

	record, err := client.FlightStatus(context.Background(), "LH456", "2026-02-28")
	if err != nil {
		t.Fatalf("FlightStatus failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if record.FlightNumber != "LH456" {
		t.Errorf("flight number = %q", record.FlightNumber)
	}
	if record.Carrier != "LH" {
		t.Errorf("carrier = %q", record.Carrier)
	}
	if record.Status != models.StatusDelayed {
		t.Errorf("status = %q, want delayed", record.Status)
	}
	if record.Departure.Airport != "HAM" || record.Departure.Gate != "A12" || record.Departure.Terminal != "1" {
		t.Errorf("departure leg = %+v", record.Departure)
	}
	if record.Arrival.Terminal != "4" {
		t.Errorf("arrival terminal = %q", record.Arrival.Terminal)
	}
	if record.DelayMinutes != 90 {
		t.Errorf("delay minutes = %d, want 90", record.DelayMinutes)
	}
	if !record.Disrupted() {
		t.Error("delayed flight should report as disrupted")
	}
	if record.EffectiveArrival() != "2026-02-28T16:20" {
		t.Errorf("effective arrival = %q", record.EffectiveArrival())
	}
}

func TestFlightStatus_SingleObjectCollapse(t *testing.T) {
	// The upstream collapses single matches from an array to an object.
	payload := `{
	  "FlightStatusResource": {
	    "Flights": {
	      "Flight": {
	        "Departure": {"AirportCode": "FRA", "ScheduledTimeLocal": {"DateTime": "2026-03-01T08:00"}},
	        "Arrival": {"AirportCode": "LHR", "ScheduledTimeLocal": {"DateTime": "2026-03-01T08:45"}},
	        "MarketingCarrier": {"AirlineID": "LH", "FlightNumber": "900"},
	        "FlightStatus": {"Code": "OT"}
	      }
	    }
	  }
	}`
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	})

	record, err := client.FlightStatus(context.Background(), "LH900", "2026-03-01")
	if err != nil {
		t.Fatalf("FlightStatus failed: %v", err)
	}
	if record.FlightNumber != "LH900" {
		t.Errorf("flight number = %q", record.FlightNumber)
	}
	if record.Status != models.StatusScheduled {
		t.Errorf("status = %q, want scheduled", record.Status)
	}
	if record.DelayMinutes != 0 {
		t.Errorf("delay minutes = %d, want 0", record.DelayMinutes)
	}
}

func TestFlightStatus_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FlightStatus(context.Background(), "LH999", "2026-02-28")
	if !errors.Is(err, types.ErrNoFlightData) {
		t.Fatalf("error = %v, want ErrNoFlightData", err)
	}
}

func TestFlightStatusByRoute_NotFoundIsEmpty(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	flights, err := client.FlightStatusByRoute(context.Background(), "HAM", "JFK", "2026-02-28")
	if err != nil {
		t.Fatalf("FlightStatusByRoute failed: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("flights = %d, want 0", len(flights))
	}
}

func TestGet_UpstreamFailureAfterRetries(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FlightStatus(context.Background(), "LH456", "2026-02-28")
	var unavailable *types.UpstreamUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want *types.UpstreamUnavailableError", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 with zero retries", calls)
	}
}

func TestTokenManager_CachesToken(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		fmt.Fprint(w, `{"access_token": "tok", "expires_in": 36000}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tm := NewTokenManager("id", "secret", srv.URL+"/oauth/token")
	for i := 0; i < 3; i++ {
		if _, err := tm.Token(context.Background()); err != nil {
			t.Fatalf("Token failed: %v", err)
		}
	}
	if tokenCalls != 1 {
		t.Errorf("token endpoint called %d times, want 1", tokenCalls)
	}
}

func TestRateLimiter_SpacesCalls(t *testing.T) {
	limiter := NewRateLimiter(30 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("three calls completed in %v, want at least 60ms", elapsed)
	}
}

func TestNormalizeFlightNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LH456", "LH456"},
		{"lh 456", "LH456"},
		{"456", "LH456"},
		{" lx 38 ", "LX38"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeFlightNumber(tt.in); got != tt.want {
			t.Errorf("NormalizeFlightNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupCarrier(t *testing.T) {
	for _, number := range []string{"LH456", "LX38", "OS201", "SN2903", "EW7410"} {
		if !GroupCarrier(number) {
			t.Errorf("%s should be a group carrier", number)
		}
	}
	if GroupCarrier("BA117") {
		t.Error("BA117 is not a group carrier")
	}
}

func TestDelayMinutes(t *testing.T) {
	tests := []struct {
		name      string
		scheduled string
		estimated string
		want      int
	}{
		{"ninety late", "2026-02-28T14:50", "2026-02-28T16:20", 90},
		{"on time", "2026-02-28T14:50", "2026-02-28T14:50", 0},
		{"early arrival clamps to zero", "2026-02-28T14:50", "2026-02-28T14:30", 0},
		{"no estimate", "2026-02-28T14:50", "", 0},
		{"garbage", "whenever", "2026-02-28T14:50", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := delayMinutes(tt.scheduled, tt.estimated); got != tt.want {
				t.Errorf("delayMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}
