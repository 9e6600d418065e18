package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/thornrun/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="64" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="40" y="20">
   <properties>
    <property name="enemyType" value="Brute"/>
   </properties>
  </object>
  <object id="3" class="Grape" x="10" y="30">
   <properties>
    <property name="anchored" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="4" x="24" y="32"/>
 </objectgroup>
</map>`

func TestLoad_ReadsObjectGroups(t *testing.T) {
	fsys := fstest.MapFS{"small.tmx": {Data: []byte(smallTMX)}}

	arena, err := Load(fsys, "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, 64, arena.Width)
	assert.Equal(t, 48, arena.Height)
	assert.Equal(t, []Rect{{X: 0, Y: 0, W: 64, H: 16}}, arena.Walls)
	assert.Equal(t, []Point{{X: 24, Y: 32}}, arena.PlayerSpawns)

	require.Len(t, arena.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 10, Y: 30, Type: "Grape", Anchored: true}, arena.EnemySpawns[0], "spawns sorted left to right, class as type")
	assert.Equal(t, EnemySpawn{X: 40, Y: 20, Type: "Brute"}, arena.EnemySpawns[1])
}

func TestLoad_RequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="2" height="2" tilewidth="16" tileheight="16"></map>`)}}

	_, err := Load(fsys, "empty.tmx")
	assert.ErrorContains(t, err, "no PlayerSpawn objects")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestLoad_EmbeddedArena(t *testing.T) {
	arena, err := Load(assets.Levels(), assets.DefaultArena)
	require.NoError(t, err)

	assert.Equal(t, 480, arena.Width)
	assert.Equal(t, 320, arena.Height)
	assert.Len(t, arena.Walls, 6)
	assert.Len(t, arena.Destructibles, 4)
	assert.Len(t, arena.EnemySpawns, 5)
	assert.Equal(t, []Point{{X: 100, Y: 150}}, arena.PlayerSpawns)
	assert.Equal(t, EnemySpawn{X: 60, Y: 60, Type: "Grape", Anchored: true}, arena.EnemySpawns[0])
}
