package filter_test

import (
	"testing"

	"github.com/leapstack-labs/sqltree/pkg/filter"
	"github.com/leapstack-labs/sqltree/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPython(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "select * from foo;",
			want:  "sql = 'select * from foo;'",
		},
		{
			name:  "multi line",
			input: "select *\nfrom foo;",
			want:  "sql = ('select * '\n       'from foo;')",
		},
		{
			name:  "indentation kept",
			input: "select *\n  from foo",
			want:  "sql = ('select * '\n       '  from foo')",
		},
		{
			name:  "quotes escaped",
			input: "select 'a'",
			want:  `sql = 'select \'a\''`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filter.NewPython("")
			assert.Equal(t, tt.want, f.Process(parser.Parse(tt.input)))
		})
	}
}

func TestPythonNumbersLaterStatements(t *testing.T) {
	f := filter.NewPython("q")
	assert.Equal(t, "q = 'select 1'", f.Process(parser.Parse("select 1")))
	assert.Equal(t, "\nq2 = 'select 2'", f.Process(parser.Parse("select 2")))
	assert.Equal(t, "\nq3 = 'select 3'", f.Process(parser.Parse("select 3")))
}

func TestPHP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "select * from foo;",
			want:  `$sql = "select * from foo;";`,
		},
		{
			name:  "multi line",
			input: "select *\nfrom foo;",
			want:  "$sql  = \"select * \";\n$sql .= \"from foo;\";",
		},
		{
			name:  "quotes escaped",
			input: `select "a"`,
			want:  `$sql = "select \"a\"";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filter.NewPHP("sql")
			assert.Equal(t, tt.want, f.Process(parser.Parse(tt.input)))
		})
	}
}

func TestPHPNumbersLaterStatements(t *testing.T) {
	f := filter.NewPHP("")
	f.Process(parser.Parse("select 1"))
	assert.Equal(t, "\n$sql2 = \"select 2\";", f.Process(parser.Parse("select 2")))
}

func TestProcessLeavesTreeIntact(t *testing.T) {
	stmt := parser.Parse("select 'a'\nfrom t")
	filter.NewPython("").Process(stmt)
	assert.Equal(t, "select 'a'\nfrom t", stmt.String())
}

func TestNew(t *testing.T) {
	f, err := filter.New("Python", "x")
	require.NoError(t, err)
	assert.IsType(t, &filter.Python{}, f)

	f, err = filter.New("php", "x")
	require.NoError(t, err)
	assert.IsType(t, &filter.PHP{}, f)

	_, err = filter.New("ruby", "x")
	require.Error(t, err)
	assert.True(t, filter.ErrUnknownLanguage.Is(err))
	assert.Contains(t, err.Error(), "php, python")
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"php", "python"}, filter.Languages())
}
