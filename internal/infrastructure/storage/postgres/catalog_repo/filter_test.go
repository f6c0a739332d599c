package catalog_repo

import (
	"testing"

	"github.com/Masterminds/squirrel"
)

func TestBaseCatalogRepo_ListQuery_SQL(t *testing.T) {
	repo := NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "nome"}, func() any { return nil })

	tests := []struct {
		name     string
		build    func() squirrel.SelectBuilder
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "search",
			build: func() squirrel.SelectBuilder {
				return repo.baseSelect().
					Where(squirrel.Eq{"deletion_mark": false}).
					Where(squirrel.ILike{"nome": "%rossi%"})
			},
			wantSQL:  "SELECT id, nome FROM test_table WHERE deletion_mark = $1 AND nome ILIKE $2",
			wantArgs: []any{false, "%rossi%"},
		},
		{
			name: "by id",
			build: func() squirrel.SelectBuilder {
				return repo.baseSelect().Where(squirrel.Eq{"id": 42})
			},
			wantSQL:  "SELECT id, nome FROM test_table WHERE id = $1",
			wantArgs: []any{42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.build().ToSql()
			if err != nil {
				t.Fatalf("ToSql failed: %v", err)
			}

			if sql != tt.wantSQL {
				t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", tt.wantSQL, sql)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("Args count mismatch\nwant: %d\ngot:  %d", len(tt.wantArgs), len(args))
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("Args mismatch at %d\nwant: %v\ngot:  %v", i, tt.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestBaseCatalogRepo_ParseOrderBy(t *testing.T) {
	repo := NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "nome", "comune"}, func() any { return nil })

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "nome ASC"},
		{in: "nome", want: "nome ASC"},
		{in: "-nome", want: "nome DESC"},
		{in: "+comune", want: "comune ASC"},
		{in: "unknown_col", wantErr: true},
		{in: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrderBy(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseOrderBy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
