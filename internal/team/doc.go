// Package team holds the team registry model: tracked team configuration,
// league definitions for discovery, and the teams.json load/save/merge
// logic that preserves manually curated short names and emoji across
// discovery runs.
package team
