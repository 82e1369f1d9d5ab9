package dokarkiv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) TokenProvider {
	return func(ctx context.Context) (string, error) {
		return token, nil
	}
}

func testVurdering(t *testing.T) models.Vurdering {
	t.Helper()
	vurdering, err := models.NewVurdering(models.NewVurderingInput{
		Personident:   "12345678910",
		Veilederident: "Z999999",
		Type:          models.VurderingTypeForhandsvarsel,
		Begrunnelse:   "begrunnelse",
		Document: models.DocumentComponents{
			{Type: models.DocumentComponentTypeParagraph, Texts: []string{"tekst"}},
		},
		Svarfrist: utils.Ptr(time.Now().AddDate(0, 0, 30)),
	})
	require.NoError(t, err)
	return vurdering
}

func TestJournalfor(t *testing.T) {
	t.Run("should return the journalpostId on success", func(t *testing.T) {
		var received JournalpostRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(JournalpostResponse{JournalpostID: 123456789, JournalpostFerdigstilt: true})
		}))
		defer server.Close()

		vurdering := testVurdering(t)
		client := NewDokarkivClient(server.URL, staticToken("token"))

		journalpostID, err := client.Journalfor(context.Background(), "call-id", vurdering, []byte("pdf"))
		require.NoError(t, err)
		assert.Equal(t, models.JournalpostID("123456789"), journalpostID)
		assert.Equal(t, vurdering.UUID.String(), received.EksternReferanseID)
		assert.Equal(t, JournalpostTypeUtgaaende, received.JournalpostType)
		assert.NotNil(t, received.AvsenderMottaker)
	})

	t.Run("should treat a conflict as success and reuse the existing journalpostId", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(JournalpostResponse{JournalpostID: 987654321})
		}))
		defer server.Close()

		client := NewDokarkivClient(server.URL, staticToken("token"))

		journalpostID, err := client.Journalfor(context.Background(), "call-id", testVurdering(t), []byte("pdf"))
		require.NoError(t, err)
		assert.Equal(t, models.JournalpostID("987654321"), journalpostID)
	})

	t.Run("should retry transient failures when retry is enabled", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(JournalpostResponse{JournalpostID: 42})
		}))
		defer server.Close()

		client := NewDokarkivClient(server.URL, staticToken("token"), WithRetry())

		journalpostID, err := client.Journalfor(context.Background(), "call-id", testVurdering(t), []byte("pdf"))
		require.NoError(t, err)
		assert.Equal(t, models.JournalpostID("42"), journalpostID)
		assert.Equal(t, 2, calls)
	})

	t.Run("should not retry transient failures by default", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewDokarkivClient(server.URL, staticToken("token"))

		_, err := client.Journalfor(context.Background(), "call-id", testVurdering(t), []byte("pdf"))
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should fail fast on a client error even with retry enabled", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewDokarkivClient(server.URL, staticToken("token"), WithRetry())

		_, err := client.Journalfor(context.Background(), "call-id", testVurdering(t), []byte("pdf"))
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestNewJournalpostRequest(t *testing.T) {
	t.Run("should archive decisions as internal memos without a mottaker", func(t *testing.T) {
		vurdering, err := models.NewVurdering(models.NewVurderingInput{
			Personident:   "12345678910",
			Veilederident: "Z999999",
			Type:          models.VurderingTypeIkkeAktuell,
			Arsak:         utils.Ptr(models.VurderingArsakFriskmeldt),
		})
		require.NoError(t, err)

		request := NewJournalpostRequest(vurdering, []byte("pdf"))
		assert.Equal(t, JournalpostTypeNotat, request.JournalpostType)
		assert.Nil(t, request.AvsenderMottaker)
		assert.Equal(t, "12345678910", request.Bruker.ID)
	})
}
