package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abezemskiy/passentry/internal/common/entry/decoder"
	"github.com/abezemskiy/passentry/internal/repositories/entry"
	"github.com/abezemskiy/passentry/internal/repositories/mocks"
	serverHandlers "github.com/abezemskiy/passentry/internal/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEntry = `password123
url: https://some.test.biz
notes line 1
login: user
notes line 2
notes line 3`

func TestGetLocalEntry(t *testing.T) {
	// регистрирую мок источника записей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockFetcher(ctrl)

	{
		// Тест с успешным получением и разбором записи
		m.EXPECT().Fetch(gomock.Any(), "test").Return([]byte(testEntry), nil)
		e, err := GetLocalEntry(context.Background(), m, "test")
		require.NoError(t, err)
		assert.Equal(t, "test", e.Name)
		require.NotNil(t, e.Password)
		assert.Equal(t, "password123", *e.Password)
		require.NotNil(t, e.Notes)
		assert.Equal(t, "notes line 1\nnotes line 2\nnotes line 3\n", *e.Notes)
	}
	{
		// Тест с ошибкой источника
		m.EXPECT().Fetch(gomock.Any(), "missing").Return(nil, errors.New("not in the password store"))
		_, err := GetLocalEntry(context.Background(), m, "missing")
		require.Error(t, err)
	}
	{
		// Тест с некорректным содержимым записи
		m.EXPECT().Fetch(gomock.Any(), "binary").Return([]byte{0xff, 0x00}, nil)
		_, err := GetLocalEntry(context.Background(), m, "binary")
		require.Error(t, err)
		assert.True(t, errors.Is(err, decoder.ErrInvalidData))
	}
}

func TestDecodeRemote(t *testing.T) {
	// сервер с настоящим обработчиком разбора записей
	r := chi.NewRouter()
	r.Post("/api/entry/decode/*", serverHandlers.DecodeEntryHandler())
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := resty.New()

	{
		// Тест с успешным разбором записи на сервере
		e, err := DecodeRemote(context.Background(), client, srv.URL, "web/some test", []byte(testEntry))
		require.NoError(t, err)

		want, err := decoder.Decode("web/some test", testEntry)
		require.NoError(t, err)
		assert.Equal(t, want, e)
	}
	{
		// Тест с пустой записью
		_, err := DecodeRemote(context.Background(), client, srv.URL, "test", []byte{})
		require.Error(t, err)
	}
	{
		// Сервер недоступен
		_, err := DecodeRemote(context.Background(), client, "http://127.0.0.1:1", "test", []byte(testEntry))
		require.Error(t, err)
	}
}

func TestGetRemoteEntry(t *testing.T) {
	testHandler := func(status int, body string) http.HandlerFunc {
		return func(res http.ResponseWriter, req *http.Request) {
			// проверяю, что имя записи передано в пути запроса
			assert.Equal(t, "web/github.com", chi.URLParam(req, "*"))
			res.Header().Set("Content-Type", "application/json")
			res.WriteHeader(status)
			_, _ = io.WriteString(res, body)
		}
	}

	type want struct {
		err   bool
		login *string
	}
	login := "user"
	tests := []struct {
		name   string
		status int
		body   string
		want   want
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"name":"web/github.com","password":"secret","login":"user","url":null,"notes":null}`,
			want:   want{login: &login},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   "entry web/github.com not found",
			want:   want{err: true},
		},
		{
			name:   "broken json",
			status: http.StatusOK,
			body:   `{"name":`,
			want:   want{err: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/entry/get/*", testHandler(tt.status, tt.body))
			srv := httptest.NewServer(r)
			defer srv.Close()

			e, err := GetRemoteEntry(context.Background(), resty.New(), srv.URL, "web/github.com")
			if tt.want.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.login, e.Login)
		})
	}
}

func TestPrintEntry(t *testing.T) {
	password := "secret"
	notes := "line 1\nline 2\n"
	e := entry.Entry{
		Name:     "test",
		Password: &password,
		Notes:    &notes,
	}

	tests := []struct {
		name  string
		field string
		want  string
		err   error
	}{
		{
			name:  "json",
			field: "",
			want:  "{\n  \"name\": \"test\",\n  \"password\": \"secret\",\n  \"login\": null,\n  \"url\": null,\n  \"notes\": \"line 1\\nline 2\\n\"\n}\n",
		},
		{name: "password", field: entry.PASSWORD, want: "secret\n"},
		{name: "notes", field: entry.NOTES, want: "line 1\nline 2\n"},
		{name: "absent field", field: entry.LOGIN, err: ErrAbsentField},
		{name: "unknown field", field: "otp", err: entry.ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := PrintEntry(&buf, e, tt.field)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEntryPath(t *testing.T) {
	assert.Equal(t, "web/github.com", entryPath("web/github.com"))
	assert.Equal(t, "web/some%20test", entryPath("web/some test"))
}
