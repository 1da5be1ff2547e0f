package remote

import "testing"

func FuzzSnapshotToDataset(f *testing.F) {
	f.Add(1, "Matrix", 1999, 2, true)

	f.Fuzz(func(t *testing.T, id int, name string, year int, directorID int, withLinks bool) {
		payload := snapshot{
			Movies: []moviePayload{{ID: id, Name: name, ReleaseYear: year}},
		}
		if withLinks {
			payload.Movies[0].DirectorIDs = []int{directorID}
		}

		ds := payload.toDataset()
		if ds == nil || len(ds.Movies) != 1 {
			t.Fatalf("toDataset lost the movie")
		}
		if ds.Movies[0].DirectorIDs == nil || ds.Movies[0].GenreIDs == nil {
			t.Fatalf("id lists should never be nil")
		}
		if ds.Ratings == nil || ds.Directors == nil {
			t.Fatalf("collections should never be nil")
		}
	})
}
