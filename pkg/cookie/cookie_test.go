package cookie_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/cookie"
)

func testSecret() string {
	return strings.Repeat("a", 32)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid secret", func(t *testing.T) {
		t.Parallel()
		mgr, err := cookie.New([]string{testSecret()})
		require.NoError(t, err)
		assert.NotNil(t, mgr)
	})

	t.Run("no secrets", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("secret too short", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestManager_PlainRoundTrip(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.Set(w, "name", "value"))

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := mgr.Get(r, "name")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = mgr.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_SignedRoundTrip(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.SetSigned(w, "signed", "value"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])

	got, err := mgr.GetSigned(r, "signed")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestManager_SignedTamperDetection(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.SetSigned(w, "signed", "value"))

	tampered := w.Result().Cookies()[0]
	parts := strings.SplitN(tampered.Value, "|", 2)
	require.Len(t, parts, 2)
	tampered.Value = parts[0] + "x|" + parts[1]

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(tampered)

	_, err = mgr.GetSigned(r, "signed")
	assert.Error(t, err)
}

func TestManager_EncryptedRoundTrip(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.SetEncrypted(w, "enc", "secret-value"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotContains(t, cookies[0].Value, "secret-value")

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])

	got, err := mgr.GetEncrypted(r, "enc")
	require.NoError(t, err)
	assert.Equal(t, "secret-value", got)
}

func TestManager_EncryptedInvalidValue(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.Set(w, "enc", "not-encrypted"))

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	_, err = mgr.GetEncrypted(r, "enc")
	assert.Error(t, err)
}

func TestManager_KeyRotation(t *testing.T) {
	t.Parallel()

	oldSecret := strings.Repeat("o", 32)
	newSecret := strings.Repeat("n", 32)

	oldMgr, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)

	// Cookie written under the old key.
	w := httptest.NewRecorder()
	require.NoError(t, oldMgr.SetEncrypted(w, "enc", "value"))

	// Manager rotated to a new primary key, old key kept as fallback.
	rotated, err := cookie.New([]string{newSecret, oldSecret})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := rotated.GetEncrypted(r, "enc")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mgr.Delete(w, "name")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
