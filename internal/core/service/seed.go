package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/ports"
)

type usersFile struct {
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
}

// SeedUsers loads the bootstrap accounts (admin, manager, ...) from a YAML
// file and inserts any that do not exist yet. Passwords are hashed before
// storage; re-running the seed is a no-op for existing usernames.
func SeedUsers(ctx context.Context, repo ports.AuthRepository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var uf usersFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, u := range uf.Users {
		if u.Username == "" || u.Password == "" {
			continue
		}
		role := u.Role
		if !domain.ValidRole(role) {
			role = domain.RoleUser
		}

		if _, err := repo.FindByUsername(ctx, u.Username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = repo.Create(ctx, &domain.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return err
		}
	}
	return nil
}
