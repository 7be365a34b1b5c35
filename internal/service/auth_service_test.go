package service

import (
	"context"
	"testing"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCompanyAndLogin(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewAuthService(&fakeFactory{store: store}, pub)

	req := &dto.RegisterCompanyRequest{
		CompanyName: "Acme",
		FullName:    "Jane Owner",
		Email:       "jane@acme.test",
		Password:    "correct-horse",
	}

	res, err := svc.RegisterCompany(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, string(entity.UserRoleCompany), res.User.Role)
	require.NotNil(t, res.User.CompanyId)

	require.Len(t, store.companies, 1)
	require.Len(t, store.users, 1)
	assert.Equal(t, store.users[0].Id, store.companies[0].OwnerUserId)
	assert.Contains(t, pub.types(), "COMPANY_REGISTERED")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.RegisterCompany(ctx, req)
		assert.Error(t, err)
		assert.Len(t, store.users, 1)
	})

	t.Run("login with the registered password", func(t *testing.T) {
		res, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@acme.test", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@acme.test", Password: "wrong"})
		assert.Error(t, err)
	})

	t.Run("blocked user cannot login", func(t *testing.T) {
		store.users[0].Status = entity.UserStatusBlocked
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@acme.test", Password: "correct-horse"})
		assert.Error(t, err)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	svc := NewAuthService(&fakeFactory{store: store}, nil)

	res, err := svc.RegisterCompany(ctx, &dto.RegisterCompanyRequest{
		CompanyName: "Acme",
		FullName:    "Jane Owner",
		Email:       "jane@acme.test",
		Password:    "correct-horse",
	})
	require.NoError(t, err)

	me, err := svc.Me(ctx, res.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.test", me.Email)
	assert.Equal(t, "Jane Owner", me.FullName)
}
