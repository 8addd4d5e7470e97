package scene

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/sprite"
	"github.com/Faultbox/colonysim/pkg/math"
)

// DrawItem is one sprite ready for the GPU.
type DrawItem struct {
	Sprite          *sprite.Sprite
	World           math.Mat4
	UV              [4]float32
	Tint            [4]float32
	SilhouetteColor [4]float32
	Silhouette      bool
	depth           float32
}

// BuildBatch resolves the world matrix of every drawable sprite and returns
// them sorted back to front. Sprites whose transform or camera cannot be
// resolved are logged and skipped.
func BuildBatch(sprites []*sprite.Sprite, r billboard.Resolver, view camera.View, log *zap.Logger) []DrawItem {
	if log == nil {
		log = zap.NewNop()
	}
	if err := billboard.Validate(math.Identity(), view); err != nil {
		log.Debug("camera cannot orient sprites", zap.Error(err))
		return nil
	}

	items := make([]DrawItem, 0, len(sprites))
	for _, s := range sprites {
		if !s.Drawable() {
			continue
		}
		if err := billboard.Validate(s.World, view); err != nil {
			log.Debug("skipping sprite", zap.String("sprite", s.Name), zap.Error(err))
			continue
		}

		world := s.WorldMatrix(r, view)
		if !world.IsFinite() {
			log.Debug("skipping sprite", zap.String("sprite", s.Name), zap.String("reason", "non-finite world matrix"))
			continue
		}

		anim := s.Current()
		items = append(items, DrawItem{
			Sprite:          s,
			World:           world,
			UV:              anim.UV(),
			Tint:            anim.Tint,
			SilhouetteColor: s.SilhouetteColor,
			Silhouette:      s.DrawSilhouette,
			depth:           world.Translation().Distance(view.Position),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth > items[j].depth
	})
	return items
}
