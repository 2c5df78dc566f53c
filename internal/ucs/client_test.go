package ucs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchAll(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, units []entity.CourseUnit)
	}{
		{
			name: "Should decode course units on 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[
					{"slug": "p1", "sigla": "P1", "nome": "Programação 1", "perfil": "Obrigatória",
					 "docentes": ["Ana"], "avaliacoes": [{"data": "2024-06-10", "descricao": "Teste 1"}]},
					{"slug": "fp", "sigla": "FP", "nome": "Fundamentos", "avaliacoes": []}
				]`))
			},
			check: func(t *testing.T, units []entity.CourseUnit) {
				require.Len(t, units, 2)
				assert.Equal(t, "p1", units[0].Slug)
				require.NotNil(t, units[0].Profile)
				assert.Equal(t, "Obrigatória", *units[0].Profile)
				assert.Nil(t, units[0].Criteria)
				assert.Equal(t, []entity.Evaluation{{Date: "2024-06-10", Description: "Teste 1"}}, units[0].Evaluations)
				assert.Equal(t, "FP", units[1].Sigla)
			},
		},
		{
			name: "Should return empty list on non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`[{"slug": "p1"}]`))
			},
			check: func(t *testing.T, units []entity.CourseUnit) {
				assert.NotNil(t, units)
				assert.Empty(t, units)
			},
		},
		{
			name: "Should return empty list on malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
			check: func(t *testing.T, units []entity.CourseUnit) {
				assert.Empty(t, units)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := New(server.URL, server.Client())
			tt.check(t, client.FetchAll(context.Background()))
		})
	}
}

func TestClient_FetchAll_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(url, nil)
	assert.Empty(t, client.FetchAll(context.Background()))
}

func TestClient_FetchAll_DoesNotCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client())
	client.FetchAll(context.Background())
	client.FetchAll(context.Background())

	assert.Equal(t, 2, calls)
}
