package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/interfaces/http"
	pkgjwt "github.com/ade99setia/project-bdn-karanganyar-sub001/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helper test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-untuk-unit-test"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "bdn-karanganyar-test"
	testExpMin    = 60
)

// buildTestApp membangun aplikasi Fiber minimal dengan:
//   - AuthMiddleware untuk parse JWT dan mengisi locals
//   - RequireRole untuk otorisasi
//   - Handler dummy yang mengembalikan 200 jika lolos middleware
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Redam error internal saat test
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rute terproteksi: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole membuat JWT dengan role tertentu.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "token JWT valid harus bisa dibuat")
	return "Bearer " + tok
}

// doRequest menembakkan GET /protected dan mengembalikan responsnya.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Kasus 1: user punya role yang disyaratkan → lolos (HTTP 200).
func TestRequireRole_AdminMasukRuteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin harus bisa mengakses rute khusus admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "respons harus memuat ok:true")
	assert.Equal(t, "admin", body["role"], "role harus admin")
}

// Kasus 1b: user punya salah satu role yang diizinkan (multi-role) → HTTP 200.
func TestRequireRole_SupervisorMasukRuteAdminAtauSupervisor(t *testing.T) {
	app := buildTestApp("admin", "supervisor")
	resp := doRequest(t, app, tokenForRole(t, "supervisor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"supervisor harus bisa mengakses rute yang mengizinkan admin atau supervisor")
}

// Kasus 2: user punya role lain → HTTP 403 Forbidden.
func TestRequireRole_SalesDitolakDiRuteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "sales"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sales tidak boleh mengakses rute khusus admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"respons error harus memuat kode FORBIDDEN")
}

// Kasus 2b: supervisor ditolak di rute khusus sales → HTTP 403.
func TestRequireRole_SupervisorDitolakDiRuteSales(t *testing.T) {
	app := buildTestApp("sales")
	resp := doRequest(t, app, tokenForRole(t, "supervisor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Kasus 3: tanpa header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_TanpaAuthHeader_Kembali401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // tanpa header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Kasus 4: token tidak valid / rusak → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenRusak_Kembali401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.rusak.disini")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — ekstraksi claim dari token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_EkstrakClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg jwt — integritas generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateDanParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "sales", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "sales", role)
}

func TestJWT_TokenKedaluwarsa_Error(t *testing.T) {
	// Token dengan masa berlaku -1 menit (sudah kedaluwarsa)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token kedaluwarsa harus mengembalikan error")
}

func TestJWT_SecretSalah_Error(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secret-lain-yang-berbeda-total", tok)
	assert.Error(t, err, "secret yang salah harus membuat token tidak valid")
}
