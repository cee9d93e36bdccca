package rls

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ScriptIsDeterministic(t *testing.T) {
	first := New().Script()
	second := New().Script()

	assert.Equal(t, first, second)
}

func TestGenerator_EveryPolicyDroppedBeforeCreate(t *testing.T) {
	script := New().Script()

	createCount := strings.Count(script, "CREATE POLICY")
	dropCount := strings.Count(script, "DROP POLICY IF EXISTS")

	require.Greater(t, createCount, 0)
	assert.Equal(t, createCount, dropCount,
		"each CREATE POLICY needs a matching DROP POLICY IF EXISTS")

	// Drops must come first so a rerun never hits a duplicate policy.
	for _, block := range strings.Split(script, "DO $$") {
		createIdx := strings.Index(block, "CREATE POLICY")
		if createIdx == -1 {
			continue
		}
		dropIdx := strings.Index(block, "DROP POLICY IF EXISTS")
		assert.Less(t, dropIdx, createIdx)
	}
}

func TestGenerator_GuardsMissingTables(t *testing.T) {
	g := New()
	script := g.Script()

	for _, table := range g.TableNames() {
		assert.Contains(t, script, "to_regclass('public."+table+"')",
			"table %s must be existence-checked", table)
		assert.Contains(t, script, "RAISE NOTICE 'table "+table+" does not exist",
			"table %s must skip with a notice, not fail", table)
	}
}

func TestGenerator_PublicReadPoliciesAreAdditive(t *testing.T) {
	script := New().Script()

	// Owner policies and public read policies coexist on shareable tables.
	assert.Contains(t, script, "CREATE POLICY links_owner_all ON public.links FOR ALL USING (user_id = requesting_user_id())")
	assert.Contains(t, script, "CREATE POLICY links_public_select ON public.links FOR SELECT USING (is_public = true)")
	assert.Contains(t, script, "CREATE POLICY collections_public_select ON public.collections FOR SELECT USING (is_public = true)")
}

func TestGenerator_JoinTablesInheritParentAccess(t *testing.T) {
	script := New().Script()

	assert.Contains(t, script,
		"EXISTS (SELECT 1 FROM public.links l WHERE l.id = link_id AND l.user_id = requesting_user_id())")
	assert.Contains(t, script,
		"EXISTS (SELECT 1 FROM public.collections c WHERE c.id = collection_id AND c.is_public = true)")
}

func TestGenerator_DefinesRequestingUserID(t *testing.T) {
	script := New().Script()

	assert.Contains(t, script, "CREATE OR REPLACE FUNCTION requesting_user_id()")
	assert.Contains(t, script, "current_setting('request.jwt.claims', true)")
	assert.Contains(t, script, "->>'sub'")
}

func TestGenerator_TableNames(t *testing.T) {
	assert.Equal(t, []string{
		"users", "links", "collections", "tags",
		"link_tags", "collection_links", "user_follows",
	}, New().TableNames())
}

func TestGenerator_NoSingleQuotesInPolicyExpressions(t *testing.T) {
	// Policy expressions are embedded in EXECUTE '...' literals, so a
	// stray quote would produce broken SQL.
	for _, table := range defaultTables() {
		for _, policy := range table.Policies {
			assert.NotContains(t, policy.Using, "'", "%s using", policy.Name)
			assert.NotContains(t, policy.WithCheck, "'", "%s with check", policy.Name)
		}
	}
}

func TestGenerator_EnablesRowLevelSecurityPerTable(t *testing.T) {
	g := New()
	script := g.Script()

	for _, table := range g.TableNames() {
		assert.Contains(t, script,
			"ALTER TABLE public."+table+" ENABLE ROW LEVEL SECURITY")
	}
}

func TestNewForTables(t *testing.T) {
	g := NewForTables([]Table{
		{Name: "links", Policies: []Policy{
			{Name: "links_public_select", Command: "SELECT", Using: "is_public = true"},
		}},
	})

	script := g.Script()
	assert.Equal(t, []string{"links"}, g.TableNames())
	assert.Contains(t, script, "to_regclass('public.links')")
	assert.NotContains(t, script, "public.collections")
}
