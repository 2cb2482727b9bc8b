package decoder

import (
	"errors"
	"sync"
	"testing"

	"github.com/abezemskiy/passentry/internal/repositories/entry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEntry = `password123
url: https://some.test.biz
notes line 1
login: user
notes line 2
notes line 3`

// ptr - вспомогательная функция для получения указателя на строку.
func ptr(s string) *string {
	return &s
}

func TestDecodeBytes(t *testing.T) {
	e, err := DecodeBytes("test", []byte(testEntry))
	require.NoError(t, err)

	assert.Equal(t, "test", e.Name)
	assert.Equal(t, ptr("password123"), e.Password)
	assert.Equal(t, ptr("user"), e.Login)
	assert.Equal(t, ptr("https://some.test.biz"), e.URL)
	assert.Equal(t, ptr("notes line 1\nnotes line 2\nnotes line 3\n"), e.Notes)
}

func TestDecode(t *testing.T) {
	type want struct {
		entry entry.Entry
		err   error
	}
	tests := []struct {
		name      string
		entryName string
		text      string
		want      want
	}{
		{
			name:      "only password",
			entryName: "onlysecret",
			text:      "onlysecret",
			want: want{
				entry: entry.Entry{Name: "onlysecret", Password: ptr("onlysecret")},
			},
		},
		{
			name:      "password is not trimmed",
			entryName: "spaces",
			text:      "  secret with spaces \t",
			want: want{
				entry: entry.Entry{Name: "spaces", Password: ptr("  secret with spaces \t")},
			},
		},
		{
			name:      "empty url directive",
			entryName: "empty url",
			text:      "secret\nurl:",
			want: want{
				entry: entry.Entry{Name: "empty url", Password: ptr("secret"), URL: ptr("")},
			},
		},
		{
			name:      "last match wins",
			entryName: "two urls",
			text:      "secret\nurl: a\nurl: b\nlogin: first\nlogin:   second  ",
			want: want{
				entry: entry.Entry{Name: "two urls", Password: ptr("secret"), URL: ptr("b"), Login: ptr("second")},
			},
		},
		{
			name:      "first line is never a directive",
			entryName: "first line",
			text:      "url: https://not.a.url\nlogin: user",
			want: want{
				entry: entry.Entry{Name: "first line", Password: ptr("url: https://not.a.url"), Login: ptr("user")},
			},
		},
		{
			name:      "prefix must start at column zero",
			entryName: "prefix",
			text:      "secret\nmyurl: foo\n url: bar\nURL: baz\nLogin: qux",
			want: want{
				entry: entry.Entry{
					Name:     "prefix",
					Password: ptr("secret"),
					Notes:    ptr("myurl: foo\n url: bar\nURL: baz\nLogin: qux\n"),
				},
			},
		},
		{
			name:      "single trailing newline is not a note",
			entryName: "trailing",
			text:      "secret\n",
			want: want{
				entry: entry.Entry{Name: "trailing", Password: ptr("secret")},
			},
		},
		{
			name:      "trailing newline after notes is kept",
			entryName: "trailing notes",
			text:      "secret\nnote\n",
			want: want{
				entry: entry.Entry{Name: "trailing notes", Password: ptr("secret"), Notes: ptr("note\n\n")},
			},
		},
		{
			name:      "blank lines are folded into notes",
			entryName: "blank",
			text:      "secret\n\n\nlogin: user",
			want: want{
				entry: entry.Entry{Name: "blank", Password: ptr("secret"), Login: ptr("user"), Notes: ptr("\n\n")},
			},
		},
		{
			name:      "carriage return is kept",
			entryName: "crlf",
			text:      "secret\r\nurl: https://a.b\r\nnote\r\n",
			want: want{
				entry: entry.Entry{
					Name:     "crlf",
					Password: ptr("secret\r"),
					URL:      ptr("https://a.b"),
					Notes:    ptr("note\r\n\n"),
				},
			},
		},
		{
			name:      "single character note",
			entryName: "short",
			text:      "secret\nx",
			want: want{
				entry: entry.Entry{Name: "short", Password: ptr("secret"), Notes: ptr("x\n")},
			},
		},
		{
			name:      "empty first line",
			entryName: "empty password",
			text:      "\nlogin: user",
			want: want{
				entry: entry.Entry{Name: "empty password", Password: ptr(""), Login: ptr("user")},
			},
		},
		{
			name:      "empty name",
			entryName: "",
			text:      testEntry,
			want: want{
				err: ErrInvalidName,
			},
		},
		{
			name:      "empty data",
			entryName: "test",
			text:      "",
			want: want{
				err: ErrInvalidData,
			},
		},
		{
			name:      "empty name and data",
			entryName: "",
			text:      "",
			want: want{
				err: ErrInvalidName,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Decode(tt.entryName, tt.text)
			if tt.want.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.want.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.entry, e)
		})
	}
}

func TestDecodeBytesErrors(t *testing.T) {
	tests := []struct {
		name      string
		entryName string
		data      []byte
		err       error
	}{
		{name: "empty name", entryName: "", data: []byte(testEntry), err: ErrInvalidName},
		{name: "empty name and data", entryName: "", data: []byte(""), err: ErrInvalidName},
		{name: "nil data", entryName: "test", data: nil, err: ErrInvalidData},
		{name: "invalid utf8", entryName: "test", data: []byte{0xff, 0xfe, 0xfd}, err: ErrInvalidData},
		{name: "invalid utf8 in notes", entryName: "test", data: []byte("secret\nnote \xc3\x28"), err: ErrInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(tt.entryName, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestDecodePasswordIsFirstLine(t *testing.T) {
	texts := []string{
		"a",
		"a\nb",
		" a \n",
		"\n\n\n",
		"пароль\nurl: https://пример.рф",
	}
	for _, text := range texts {
		e, err := Decode("name", text)
		require.NoError(t, err)
		require.NotNil(t, e.Password)

		want := text
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				want = text[:i]
				break
			}
		}
		assert.Equal(t, want, *e.Password)
		assert.Equal(t, "name", e.Name)
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	data := []byte("secret\nlogin: user\nnote")
	e, err := DecodeBytes("test", data)
	require.NoError(t, err)

	// изменяю исходный буфер, расшифрованная запись не должна измениться
	for i := range data {
		data[i] = 'x'
	}
	assert.Equal(t, ptr("secret"), e.Password)
	assert.Equal(t, ptr("user"), e.Login)
	assert.Equal(t, ptr("note\n"), e.Notes)
}

func TestDecodeIdempotent(t *testing.T) {
	first, err := Decode("test", testEntry)
	require.NoError(t, err)
	second, err := Decode("test", testEntry)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeConcurrent(t *testing.T) {
	want, err := Decode("test", testEntry)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]entry.Entry, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Decode("test", testEntry)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
