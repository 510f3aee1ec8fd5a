package middlewares

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/config"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint("userID"),
			"role":   c.GetString("role"),
		})
	})
	r.GET("/admin-only", AuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	r := testRouter()

	user := &models.User{
		Email:        "benny@example.com",
		PasswordHash: "x",
		Name:         "Benny",
		Role:         models.RoleBeneficiary,
	}
	require.NoError(t, config.DB.Create(user).Error)

	token, err := utils.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	t.Run("valid token resolves identity", func(t *testing.T) {
		w := doGet(r, "/whoami", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"beneficiary"`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/whoami", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		ghost := &models.User{Email: "ghost@example.com", PasswordHash: "x"}
		require.NoError(t, config.DB.Create(ghost).Error)
		ghostToken, err := utils.GenerateJWT(ghost.ID, ghost.Email)
		require.NoError(t, err)
		require.NoError(t, config.DB.Unscoped().Delete(ghost).Error)

		w := doGet(r, "/whoami", ghostToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authenticated but wrong role", func(t *testing.T) {
		w := doGet(r, "/admin-only", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes the role gate", func(t *testing.T) {
		admin := &models.User{Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin}
		require.NoError(t, config.DB.Create(admin).Error)
		adminToken, err := utils.GenerateJWT(admin.ID, admin.Email)
		require.NoError(t, err)

		w := doGet(r, "/admin-only", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
