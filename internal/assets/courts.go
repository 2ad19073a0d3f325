package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

//go:embed courts/*.yaml
var courtFS embed.FS

func init() {
	entries, err := fs.ReadDir(courtFS, "courts")
	if err != nil {
		panic(fmt.Sprintf("assets: read embedded courts: %v", err))
	}
	for _, e := range entries {
		data, err := courtFS.ReadFile(path.Join("courts", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("assets: read %s: %v", e.Name(), err))
		}
		court, err := config.ParseCourt(data)
		if err != nil {
			panic(fmt.Sprintf("assets: %s: %v", e.Name(), err))
		}
		registry.Register(court.ID, func() config.CourtConfig {
			return cloneCourt(court)
		})
	}
}

// cloneCourt copies the hoop slice so callers can't mutate the registered
// layout.
func cloneCourt(c config.CourtConfig) config.CourtConfig {
	c.Hoops = append([]config.HoopConfig(nil), c.Hoops...)
	return c
}

// Court returns a court layout: from file when path is set, otherwise
// the registered court with the given id.
func Court(id, file string) (config.CourtConfig, error) {
	if file != "" {
		return config.LoadCourtFile(file)
	}
	if id == "" {
		id = registry.DefaultCourt
	}
	return registry.Create(id)
}
