package scenario

import (
	"github.com/nathoo/frogquest/engine/effects"
	"github.com/nathoo/frogquest/types"
)

func pondDive(f *types.Frog, r Rand) []types.Effect {
	effs := []types.Effect{effects.Energy(-20)}
	if chance(r, PondDiveChance) {
		return append(effs,
			effects.Item(ItemGlowingPearl),
			effects.Happiness(20),
			effects.SayText("You dive deep and find a magical glowing pearl!"),
		)
	}
	return append(effs,
		effects.Happiness(-10),
		effects.SayText("The water is colder than expected! You surface quickly, shivering."),
	)
}

// abilityText is the narration for a frog using its special ability.
func abilityText(f *types.Frog) []string {
	switch f.Archetype {
	case types.TreeFrog:
		return []string{"You climb high into the trees and spot the perfect solution!"}
	case types.PoisonDartFrog:
		return []string{"Your bright colors ward off any danger, making exploration safe!"}
	case types.Bullfrog:
		return []string{"With a mighty leap, you overcome the obstacle easily!"}
	case types.GlassFrog:
		return []string{"Nearly invisible, you sneak past all dangers undetected!"}
	case types.RocketFrog:
		return []string{"You zip around at incredible speed, solving the problem in seconds!"}
	case types.RainFrog:
		return []string{"You sense the perfect weather conditions and time your actions perfectly!"}
	case types.Custom:
		return []string{"You use your {ability}!", "The results are spectacular!"}
	default:
		return []string{"You try your best!"}
	}
}

func useAbility(f *types.Frog, r Rand) []types.Effect {
	var effs []types.Effect
	for _, line := range abilityText(f) {
		effs = append(effs, effects.SayText(line))
	}
	effs = append(effs, effects.Energy(-10), effects.Happiness(30))

	if chance(r, AbilityBonusChance) {
		item := AbilityRewards[r.Intn(len(AbilityRewards))]
		effs = append(effs,
			effects.Item(item),
			effects.SayText("Your special ability helped you find: "+item+"!"),
		)
	}
	return effs
}

func investigateArea(f *types.Frog, r Rand) []types.Effect {
	return []types.Effect{
		effects.SayText(areaFindings[r.Intn(len(areaFindings))]),
		effects.Energy(-5),
		effects.Happiness(10),
	}
}

func searchStream(f *types.Frog, r Rand) []types.Effect {
	effs := []types.Effect{
		effects.Energy(-15),
		effects.SayText("You search carefully through the reeds and rocks..."),
	}
	if chance(r, StreamSearchChance) {
		return append(effs,
			effects.SayText("Success! You reunite the tadpole with its family!"),
			effects.Happiness(40),
			effects.Item(ItemHeroMedal),
		)
	}
	return append(effs,
		effects.SayText("No luck yet, but you'll keep trying!"),
		effects.Happiness(10),
	)
}

func comfortTadpole(f *types.Frog, r Rand) []types.Effect {
	return []types.Effect{
		effects.SayText("You sing a soothing frog song to calm the tadpole."),
		effects.Happiness(20),
		effects.SayText("The tadpole feels better and remembers which way its family went!"),
	}
}

func enterTemple(f *types.Frog, r Rand) []types.Effect {
	effs := []types.Effect{
		effects.SayText("You hop bravely into the ancient temple..."),
		effects.Energy(-10),
	}
	if chance(r, TempleScrollChance) {
		return append(effs,
			effects.Item(ItemAncientScroll),
			effects.SayText("You discover the wisdom of the ancient frogs!"),
			effects.Happiness(30),
		)
	}
	return append(effs, effects.SayText("The temple is dark and spooky, but you're brave!"))
}

func studyHieroglyphs(f *types.Frog, r Rand) []types.Effect {
	return []types.Effect{
		effects.SayText("The hieroglyphs tell stories of legendary frog heroes!"),
		effects.Happiness(15),
		effects.Item(ItemHistory),
	}
}

func moveTree(f *types.Frog, r Rand) []types.Effect {
	if f.Archetype == types.Bullfrog {
		return []types.Effect{
			effects.SayText("With your incredible strength, you push the tree aside!"),
			effects.Happiness(50),
			effects.Item(ItemStrengthBadge),
		}
	}
	return []types.Effect{
		effects.SayText("You try your best, inspiring others to help!"),
		effects.Energy(-20),
		effects.Happiness(20),
	}
}

func findRoute(f *types.Frog, r Rand) []types.Effect {
	return []types.Effect{
		effects.SayText("You scout ahead and find a safe detour through the lily pads!"),
		effects.Happiness(25),
		effects.Energy(-10),
	}
}
