package controllers

import (
	"net/http"
	"skilld/internal/models"
	"skilld/internal/testutil"
)

func testSnapshot() *models.Snapshot {
	return models.NewSnapshot(
		map[int]*models.PlayerRecord{
			5: {Name: "ALICE", Title: "ROOKIE", ExtID: 12345678, Plays: 42},
			6: {
				Name: "ALICE",
				Guitar: models.InstrumentRecord{
					Skill: 123456,
					Exist: []models.ScoreEntry{
						{SongID: 1, Name: "Low", Chart: "G.ADV", Level: 480, Skill: 5555, Percent: models.NotAttempted()},
						{SongID: 2, Name: "High", Chart: "G.EXT", Level: 585, Skill: 9876, Percent: models.PercentageOf(8745)},
					},
				},
			},
		},
		nil,
		map[int]string{4: "Tri-Boost Re:EVOLVE", 5: "Matixx", 6: "EXCHAIN"},
	)
}

func newTestService() *testutil.MockSnapshotService {
	return &testutil.MockSnapshotService{Snapshots: map[string]*models.Snapshot{"alice": testSnapshot()}}
}

// serve routes req through a mux so path values are populated.
func serve(pattern string, h http.HandlerFunc, w http.ResponseWriter, req *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	mux.ServeHTTP(w, req)
}
