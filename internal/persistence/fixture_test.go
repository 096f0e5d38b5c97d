package persistence

const bareSnapshot = `{
  "player": {
    "6": {
      "name": "ALICE",
      "gf_skills": 123456,
      "gf_exist": [
        {"music_id": 1, "music_name": "", "chart": "G.EXT", "music_difficulties": 585, "skills_point": 9876, "perc": -1}
      ]
    }
  },
  "songs": {"1": {"name": "Song A", "artist": "Artist A"}},
  "versions": {"5": "Matixx", "6": "EXCHAIN"}
}`
