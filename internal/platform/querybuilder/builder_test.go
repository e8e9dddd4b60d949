package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "scheduled_at").
		From("matches").
		Where(Eq("delegated_by", "u1"), Expr("delegated_at IS NOT NULL")).
		OrderBy("scheduled_at", "id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, scheduled_at FROM matches WHERE delegated_by = $1 AND delegated_at IS NOT NULL ORDER BY scheduled_at, id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RangeAndLock(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(Eq("id", "m1"), Gte("scheduled_at", "a"), Lt("scheduled_at", "b"), Neq("status", "cancelled")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE id = $1 AND scheduled_at >= $2 AND scheduled_at < $3 AND status <> $4 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "cancelled" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("referees").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM referees WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("match_referees").
		Columns("id", "match_id").
		Values("a1", "m1").
		Values("a2", "m1").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO match_referees (id, match_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "a2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("match_referees").Columns("id", "match_id").Values("a1").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("delegation_status", "partial").
		Set("updated_at", "2025-06-01T00:00:00Z").
		Where(Eq("id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET delegation_status = $1, updated_at = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "partial" || args[2] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("referee_availability").
		Where(Eq("referee_id", "r1"), Gte("available_on", "2025-06-01"), Expr("available_on <= ?", "2025-06-03")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM referee_availability WHERE referee_id = $1 AND available_on >= $2 AND available_on <= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("match_referees").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID      string `db:"id"`
		MatchID string `db:"match_id"`
		skipped string
		Ignored string `db:"-"`
	}

	query, args, err := InsertModel("match_referees", row{ID: "a1", MatchID: "m1"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO match_referees (id, match_id) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[1] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
