package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mirrordomain "mailpilot-backend/internal/mirror/domain"
	mirrordto "mailpilot-backend/internal/mirror/dto"
	"mailpilot-backend/internal/mirror/repository"
	"mailpilot-backend/pkg/gmail"
)

func ruleRemoteIDs(rules []mirrordomain.Rule) []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.RemoteID)
	}
	return ids
}

func TestSyncRulesConvergesToRemoteSet(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{filters: []gmail.Filter{
		{ID: "F1", Criteria: "from:billing@example.com", AddLabelIDs: []string{"L1"}},
		{ID: "F2", Criteria: "list:dev@example.com", RemoveLabelIDs: []string{"INBOX"}},
	}}
	uc := NewRuleUsecase(ruleRepo, client)
	tenant := testTenant()

	require.NoError(t, ruleRepo.Upsert(&mirrordomain.Rule{TenantEmail: tenant.Email, RemoteID: "F1", Name: "Billing"}))
	require.NoError(t, ruleRepo.Upsert(&mirrordomain.Rule{TenantEmail: tenant.Email, RemoteID: "F9", Name: "Gone"}))

	rules, err := uc.SyncRules(context.Background(), tenant)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"F1", "F2"}, ruleRemoteIDs(rules))
	for _, r := range rules {
		switch r.RemoteID {
		case "F1":
			// Locally assigned name survives the refresh
			assert.Equal(t, "Billing", r.Name)
			assert.Equal(t, "from:billing@example.com", r.Criteria)
			assert.Equal(t, mirrordomain.StringList{"L1"}, r.AddLabelIDs)
		case "F2":
			// New remote filters get the criteria as fallback name
			assert.Equal(t, "list:dev@example.com", r.Name)
			assert.Equal(t, mirrordomain.StringList{"INBOX"}, r.RemoveLabelIDs)
		}
	}
}

func TestSyncRulesEmptyRemoteClearsMirror(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{}
	uc := NewRuleUsecase(ruleRepo, client)
	tenant := testTenant()

	require.NoError(t, ruleRepo.Upsert(&mirrordomain.Rule{TenantEmail: tenant.Email, RemoteID: "F1", Name: "Billing"}))

	rules, err := uc.SyncRules(context.Background(), tenant)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestCreateRuleRemoteFirst(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{nextID: "F3"}
	uc := NewRuleUsecase(ruleRepo, client)
	tenant := testTenant()

	rule, err := uc.CreateRule(context.Background(), tenant, &mirrordto.CreateRuleRequest{
		Name:        "Invoices",
		Criteria:    "subject:invoice",
		AddLabelIDs: []string{"L1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "F3", rule.RemoteID)
	assert.Equal(t, "Invoices", rule.Name)

	local, err := ruleRepo.ListByTenant(tenant.Email)
	require.NoError(t, err)
	require.Len(t, local, 1)
}

func TestCreateRuleRemoteFailureWritesNothingLocally(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{createErr: errors.New("invalid criteria")}
	uc := NewRuleUsecase(ruleRepo, client)
	tenant := testTenant()

	_, err := uc.CreateRule(context.Background(), tenant, &mirrordto.CreateRuleRequest{Criteria: "???"})
	require.Error(t, err)

	local, err := ruleRepo.ListByTenant(tenant.Email)
	require.NoError(t, err)
	assert.Empty(t, local)
}

func TestDeleteRuleUnknownIDIsNotFound(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{}
	uc := NewRuleUsecase(ruleRepo, client)

	err := uc.DeleteRule(context.Background(), testTenant(), "missing")
	assert.ErrorIs(t, err, ErrRuleNotFound)
	assert.Empty(t, client.deletedFilter)
}

func TestDeleteRuleRemoteThenLocal(t *testing.T) {
	db := newMirrorDB(t)
	ruleRepo := repository.NewRuleRepository(db)
	client := &fakeClient{}
	uc := NewRuleUsecase(ruleRepo, client)
	tenant := testTenant()

	seed := &mirrordomain.Rule{TenantEmail: tenant.Email, RemoteID: "F1", Name: "Billing"}
	require.NoError(t, ruleRepo.Upsert(seed))

	require.NoError(t, uc.DeleteRule(context.Background(), tenant, seed.ID))
	assert.Equal(t, []string{"F1"}, client.deletedFilter)

	local, err := ruleRepo.ListByTenant(tenant.Email)
	require.NoError(t, err)
	assert.Empty(t, local)
}
