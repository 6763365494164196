package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// RefreshToken troca o refresh token por um novo access token no provedor.
// O refresh token devolvido pode ser vazio quando o provedor não rotaciona.
func (c *CalendarClient) RefreshToken(refreshToken string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar o token: %w", err)
	}

	return token, nil
}
