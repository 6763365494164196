package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSecret gera uma chave aleatória longa para assinatura de webhooks
func GenerateSecret() (string, error) {
	return gonanoid.Generate(characters, 32)
}

// GenerateToken gera o token público de um formulário de captura
func GenerateToken() (string, error) {
	return gonanoid.Generate(characters, 12)
}
