// Package rls generates row-level-security policy SQL for Postgres.
// The output is a deterministic, idempotent script: every table block
// checks that the table exists before touching it, and every policy is
// dropped before it is recreated so reruns converge on the same state.
package rls

import (
	"fmt"
	"strings"
)

// Policy is one row-level-security policy on a table.
type Policy struct {
	Name      string
	Command   string // SELECT, INSERT, UPDATE, DELETE or ALL
	Using     string // row visibility expression, empty for INSERT-only policies
	WithCheck string // new-row expression, empty when not applicable
}

// Table is a table together with the policies that protect it.
type Table struct {
	Name     string
	Policies []Policy
}

// Generator builds the policy script for a fixed set of tables.
type Generator struct {
	tables []Table
}

// New returns a generator covering the full application schema.
func New() *Generator {
	return &Generator{tables: defaultTables()}
}

// NewForTables returns a generator restricted to the given tables.
func NewForTables(tables []Table) *Generator {
	return &Generator{tables: tables}
}

// TableNames returns the names of the tables the script covers.
func (g *Generator) TableNames() []string {
	names := make([]string, 0, len(g.tables))
	for _, t := range g.tables {
		names = append(names, t.Name)
	}
	return names
}

// Script renders the complete policy script. The same generator always
// produces byte-identical output, and applying the output twice leaves
// the database in the same state as applying it once.
func (g *Generator) Script() string {
	var b strings.Builder

	b.WriteString("-- Row-level-security policies. Generated; do not edit by hand.\n\n")
	b.WriteString(requestingUserIDFunction)
	b.WriteString("\n")

	for _, t := range g.tables {
		b.WriteString(tableBlock(t))
		b.WriteString("\n")
	}

	return b.String()
}

// requestingUserIDFunction resolves the calling user from the JWT
// claims the connection poolers inject. The "sub" claim holds the
// identity provider's subject UUID, which is also the local user ID.
// The second current_setting argument makes the lookup return NULL
// instead of raising when no claims are set.
const requestingUserIDFunction = `CREATE OR REPLACE FUNCTION requesting_user_id() RETURNS uuid
LANGUAGE sql STABLE
AS $fn$
  SELECT NULLIF(current_setting('request.jwt.claims', true)::json->>'sub', '')::uuid
$fn$;
`

// tableBlock renders one DO block guarding a single table. If the
// table does not exist yet the block raises a notice and returns
// without error, so the script can run against partial schemas.
func tableBlock(t Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DO $$\nBEGIN\n")
	fmt.Fprintf(&b, "  IF to_regclass('public.%s') IS NULL THEN\n", t.Name)
	fmt.Fprintf(&b, "    RAISE NOTICE 'table %s does not exist, skipping policies';\n", t.Name)
	fmt.Fprintf(&b, "    RETURN;\n")
	fmt.Fprintf(&b, "  END IF;\n\n")
	fmt.Fprintf(&b, "  EXECUTE 'ALTER TABLE public.%s ENABLE ROW LEVEL SECURITY';\n", t.Name)

	for _, p := range t.Policies {
		fmt.Fprintf(&b, "\n  EXECUTE 'DROP POLICY IF EXISTS %s ON public.%s';\n", p.Name, t.Name)
		fmt.Fprintf(&b, "  EXECUTE '%s';\n", createPolicyStatement(t.Name, p))
	}

	fmt.Fprintf(&b, "END\n$$;\n")
	return b.String()
}

// createPolicyStatement renders a CREATE POLICY statement. Policy
// expressions must not contain single quotes: the statement is
// embedded in a PL/pgSQL EXECUTE literal.
func createPolicyStatement(table string, p Policy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE POLICY %s ON public.%s FOR %s", p.Name, table, p.Command)
	if p.Using != "" {
		fmt.Fprintf(&b, " USING (%s)", p.Using)
	}
	if p.WithCheck != "" {
		fmt.Fprintf(&b, " WITH CHECK (%s)", p.WithCheck)
	}
	return b.String()
}

// defaultTables describes the ownership model of the whole schema.
//
// The rules mirror what the API layer enforces: owners get full access
// to their rows, public visibility adds read access for everyone, and
// join tables inherit access from their parent rows. The policies are
// additive, so a row passes if any one of them matches.
func defaultTables() []Table {
	owner := "requesting_user_id()"

	return []Table{
		{
			Name: "users",
			Policies: []Policy{
				{Name: "users_select_all", Command: "SELECT", Using: "true"},
				{Name: "users_insert_self", Command: "INSERT", WithCheck: "id = " + owner},
				{Name: "users_update_self", Command: "UPDATE", Using: "id = " + owner, WithCheck: "id = " + owner},
			},
		},
		{
			Name: "links",
			Policies: []Policy{
				{Name: "links_owner_all", Command: "ALL", Using: "user_id = " + owner, WithCheck: "user_id = " + owner},
				{Name: "links_public_select", Command: "SELECT", Using: "is_public = true"},
			},
		},
		{
			Name: "collections",
			Policies: []Policy{
				{Name: "collections_owner_all", Command: "ALL", Using: "user_id = " + owner, WithCheck: "user_id = " + owner},
				{Name: "collections_public_select", Command: "SELECT", Using: "is_public = true"},
			},
		},
		{
			Name: "tags",
			Policies: []Policy{
				{Name: "tags_select_all", Command: "SELECT", Using: "true"},
				{Name: "tags_insert_authenticated", Command: "INSERT", WithCheck: owner + " IS NOT NULL"},
			},
		},
		{
			Name: "link_tags",
			Policies: []Policy{
				{
					Name:      "link_tags_owner_all",
					Command:   "ALL",
					Using:     "EXISTS (SELECT 1 FROM public.links l WHERE l.id = link_id AND l.user_id = " + owner + ")",
					WithCheck: "EXISTS (SELECT 1 FROM public.links l WHERE l.id = link_id AND l.user_id = " + owner + ")",
				},
				{
					Name:    "link_tags_public_select",
					Command: "SELECT",
					Using:   "EXISTS (SELECT 1 FROM public.links l WHERE l.id = link_id AND l.is_public = true)",
				},
			},
		},
		{
			Name: "collection_links",
			Policies: []Policy{
				{
					Name:      "collection_links_owner_all",
					Command:   "ALL",
					Using:     "EXISTS (SELECT 1 FROM public.collections c WHERE c.id = collection_id AND c.user_id = " + owner + ")",
					WithCheck: "EXISTS (SELECT 1 FROM public.collections c WHERE c.id = collection_id AND c.user_id = " + owner + ")",
				},
				{
					Name:    "collection_links_public_select",
					Command: "SELECT",
					Using:   "EXISTS (SELECT 1 FROM public.collections c WHERE c.id = collection_id AND c.is_public = true)",
				},
			},
		},
		{
			Name: "user_follows",
			Policies: []Policy{
				{Name: "user_follows_select_all", Command: "SELECT", Using: "true"},
				{
					Name:      "user_follows_follower_all",
					Command:   "ALL",
					Using:     "follower_id = " + owner,
					WithCheck: "follower_id = " + owner,
				},
			},
		},
	}
}
