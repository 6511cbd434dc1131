package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cvparse"
	"github.com/fwojciec/cvparse/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkRecordInserts measures storing records the way a parse batch
// does: one transaction per record with a handful of entries each.
func BenchmarkRecordInserts(b *testing.B) {
	b.Run("memory", func(b *testing.B) {
		benchmarkRecordInserts(b, ":memory:")
	})

	b.Run("wal_file", func(b *testing.B) {
		benchmarkRecordInserts(b, filepath.Join(b.TempDir(), "bench.db"))
	})
}

func benchmarkRecordInserts(b *testing.B, dbPath string) {
	b.Helper()

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())
	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	svc := sqlite.NewRecordService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rec := &cvparse.Record{
			Source: fmt.Sprintf("profiles/profile%d.pdf", i),
			Name:   fmt.Sprintf("Person %d", i),
			Experience: []cvparse.ExperienceEntry{
				{Company: "Acme", JobTitle: "Engineer", Duration: cvparse.DateRange{FromYear: "2019", ToYear: "2021"}},
				{Company: "Acme", JobTitle: "Intern", Duration: cvparse.DateRange{FromYear: "2018", ToYear: "2019"}},
			},
			Education: []cvparse.EducationEntry{
				{University: "State University", Degree: "BSc", Major: "Physics"},
			},
			Sidebar: []cvparse.SidebarSection{{Name: "Top Skills", Lines: []string{"Go", "SQL"}}},
		}
		if err := svc.CreateRecord(ctx, rec); err != nil {
			b.Fatal(err)
		}
	}
}
