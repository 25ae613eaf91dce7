package token

// keywords maps upper-case words to their keyword class. Anything not listed
// here (or registered at runtime) lexes as NAME.
var keywords = map[string]TokenType{
	// DML
	"SELECT":  KEYWORD_DML,
	"INSERT":  KEYWORD_DML,
	"UPDATE":  KEYWORD_DML,
	"DELETE":  KEYWORD_DML,
	"MERGE":   KEYWORD_DML,
	"UPSERT":  KEYWORD_DML,
	"REPLACE": KEYWORD_DML,

	// DDL
	"CREATE":   KEYWORD_DDL,
	"ALTER":    KEYWORD_DDL,
	"DROP":     KEYWORD_DDL,
	"TRUNCATE": KEYWORD_DDL,

	// CTE
	"WITH": KEYWORD_CTE,

	// Order direction
	"ASC":  KEYWORD_ORDER,
	"DESC": KEYWORD_ORDER,

	// Builtin type names
	"BIGINT":    NAME_BUILTIN,
	"BOOLEAN":   NAME_BUILTIN,
	"CHAR":      NAME_BUILTIN,
	"DATE":      NAME_BUILTIN,
	"DECIMAL":   NAME_BUILTIN,
	"FLOAT":     NAME_BUILTIN,
	"INT":       NAME_BUILTIN,
	"INTEGER":   NAME_BUILTIN,
	"NUMERIC":   NAME_BUILTIN,
	"REAL":      NAME_BUILTIN,
	"SMALLINT":  NAME_BUILTIN,
	"TEXT":      NAME_BUILTIN,
	"TIMESTAMP": NAME_BUILTIN,
	"VARCHAR":   NAME_BUILTIN,

	// Structural and common keywords
	"ALL":       KEYWORD,
	"AND":       KEYWORD,
	"AS":        KEYWORD,
	"BEGIN":     KEYWORD,
	"BETWEEN":   KEYWORD,
	"BY":        KEYWORD,
	"CASE":      KEYWORD,
	"CROSS":     KEYWORD,
	"DECLARE":   KEYWORD,
	"DEFAULT":   KEYWORD,
	"DISTINCT":  KEYWORD,
	"ELSE":      KEYWORD,
	"END":       KEYWORD,
	"EXCEPT":    KEYWORD,
	"EXISTS":    KEYWORD,
	"FALSE":     KEYWORD,
	"FOR":       KEYWORD,
	"FOREACH":   KEYWORD,
	"FROM":      KEYWORD,
	"FULL":      KEYWORD,
	"GROUP":     KEYWORD,
	"HAVING":    KEYWORD,
	"IF":        KEYWORD,
	"IN":        KEYWORD,
	"INDEX":     KEYWORD,
	"INNER":     KEYWORD,
	"INTERSECT": KEYWORD,
	"INTO":      KEYWORD,
	"IS":        KEYWORD,
	"JOIN":      KEYWORD,
	"KEY":       KEYWORD,
	"LEFT":      KEYWORD,
	"LIKE":      KEYWORD,
	"LIMIT":     KEYWORD,
	"LOOP":      KEYWORD,
	"NOT":       KEYWORD,
	"NULL":      KEYWORD,
	"OFFSET":    KEYWORD,
	"ON":        KEYWORD,
	"OR":        KEYWORD,
	"ORDER":     KEYWORD,
	"OUTER":     KEYWORD,
	"OVER":      KEYWORD,
	"PARTITION": KEYWORD,
	"PRIMARY":   KEYWORD,
	"QUALIFY":   KEYWORD,
	"RETURNING": KEYWORD,
	"RIGHT":     KEYWORD,
	"ROLE":      KEYWORD,
	"SET":       KEYWORD,
	"TABLE":     KEYWORD,
	"THEN":      KEYWORD,
	"TRUE":      KEYWORD,
	"UNION":     KEYWORD,
	"USING":     KEYWORD,
	"VALUES":    KEYWORD,
	"VIEW":      KEYWORD,
	"WHEN":      KEYWORD,
	"WHERE":     KEYWORD,
	"WHILE":     KEYWORD,
	"WINDOW":    KEYWORD,
}
