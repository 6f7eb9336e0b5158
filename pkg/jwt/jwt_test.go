package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/pkg/jwt"
)

func TestGenerateParse_Ida(t *testing.T) {
	in := jwt.Identity{UserID: "u-1", Email: "cfo@acme.id", BusinessName: "Acme"}
	token, err := jwt.Generate("secreto", "subguard", in, 5)
	require.NoError(t, err)

	out, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "subguard", jwt.Identity{UserID: "u-1"}, 5)
	require.NoError(t, err)
	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "subguard", jwt.Identity{UserID: "u-1"}, -1)
	require.NoError(t, err)
	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "subguard", jwt.Identity{}, 5)
	assert.Error(t, err)
}
