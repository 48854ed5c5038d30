package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// resetPasswordPageTmpl is the tiny standalone form mailed-out reset links
// land on. It posts the token together with the new password.
var resetPasswordPageTmpl = template.Must(template.New("reset-password-page").Parse(`<html>
  <body>
    <h2>Reset Your Password</h2>
    <form action="/api/auth/reset-password" method="post">
        <input type="hidden" name="token" value="{{.Token}}" />
        <label>New Password:</label>
        <input type="password" name="new_password" />
        <button type="submit">Reset</button>
    </form>
  </body>
</html>
`))

func renderResetPasswordPage(c *gin.Context, token string) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := resetPasswordPageTmpl.Execute(c.Writer, gin.H{"Token": token}); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
