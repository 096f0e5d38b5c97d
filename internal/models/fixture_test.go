package models

const snapshotFixture = `{
  "player": {
    "5": {
      "name": "ALICE",
      "extid": 12345678,
      "title": "ROOKIE",
      "plays": 42,
      "gf_skills": 123456,
      "gf_all_skills": 234567,
      "gf_classic_all_skills": 111111,
      "gf_clear_music_num": 10,
      "gf_full_music_num": 4,
      "gf_exce_music_num": 1,
      "gf_clear_diff": 650,
      "gf_full_diff": 480,
      "gf_exce_diff": 230,
      "gf_exist": [
        {"music_id": 1, "music_name": "Song A", "chart": "G.EXT", "music_difficulties": 585, "skills_point": 9876, "perc": 8745},
        {"music_id": 2, "music_name": "", "chart": "G.ADV", "music_difficulties": 480, "skills_point": 5555, "perc": -1},
        -1
      ],
      "gf_new": [-1, -1, -1],
      "dm_skills": 7000,
      "dm_exist": "not-a-list",
      "dm_new": [
        {"music_id": 3, "music_name": "Song C", "chart": "D.MST", "music_difficulties": 900, "skills_point": 15000, "perc": 10000}
      ]
    },
    "4": {"name": "ALICE"}
  },
  "songs": {
    "1": {"name": "Song A", "artist": "Artist A"},
    "2": {"name": "Song B", "artist": "Artist B"}
  },
  "versions": {
    "10": "GITADORA GALAXY WAVE",
    "5": "GITADORA Matixx",
    "4": "GITADORA Tri-Boost Re:EVOLVE",
    "6": "GITADORA EXCHAIN"
  }
}`
