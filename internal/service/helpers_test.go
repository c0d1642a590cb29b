package service

import (
	"github.com/dtroode/atlas-server/internal/hasher"
)

func cheapHasher() *hasher.Argon2 {
	return hasher.New(hasher.Params{Time: 1, MemKiB: 1024, Par: 1})
}
