package wire

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/avelorn/marklite/internal/config"
	"github.com/avelorn/marklite/internal/mathtex"
	"github.com/avelorn/marklite/internal/present"
)

// App aggregates the resolved settings and the injected capabilities
// so subcommands pull everything from one place.
type App struct {
	V    *viper.Viper
	Math mathtex.Renderer
	Opts present.Options
}

// BuildApp validates the merged configuration and resolves the default
// render options from it.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}

	mode, _ := present.ParseMode(v.GetString("render.mode"))
	variant, _ := present.ParseVariant(v.GetString("render.variant"))

	var math mathtex.Renderer
	switch v.GetString("render.math") {
	case "deferred":
		math = mathtex.Deferred{}
	case "literal":
		math = mathtex.Literal{}
	default:
		return nil, fmt.Errorf("unknown math engine %q", v.GetString("render.math"))
	}

	return &App{
		V:    v,
		Math: math,
		Opts: present.Options{
			Mode:    mode,
			Variant: variant,
			Width:   v.GetInt("render.width"),
			Math:    math,
		},
	}, nil
}
