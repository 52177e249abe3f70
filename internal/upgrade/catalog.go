// Package upgrade offers level-up rewards and applies the chosen ones to
// the player's stats.
package upgrade

import (
	"go.uber.org/zap"

	"go-wave-survivors/internal/defs"
	"go-wave-survivors/internal/logger"
	"go-wave-survivors/internal/utils"
)

// Catalog binds the weighted selector to the configured upgrade list.
type Catalog struct {
	upgrades      []defs.UpgradeDefinition
	rarityWeights []defs.RarityWeight
	rng           *utils.PRNGService
	log           *zap.Logger
}

func NewCatalog(upgrades []defs.UpgradeDefinition, rarityWeights []defs.RarityWeight, rng *utils.PRNGService, log *zap.Logger) *Catalog {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Catalog{
		upgrades:      upgrades,
		rarityWeights: rarityWeights,
		rng:           rng,
		log:           logger.OrNop(log),
	}
}

func (c *Catalog) Len() int { return len(c.upgrades) }

// Get looks an upgrade up by id.
func (c *Catalog) Get(id string) (defs.UpgradeDefinition, bool) {
	for _, u := range c.upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return defs.UpgradeDefinition{}, false
}

// Eligible returns upgrades unlocked at level whose id is not in exclude,
// in catalog order.
func (c *Catalog) Eligible(level int, exclude []string) []defs.UpgradeDefinition {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	out := make([]defs.UpgradeDefinition, 0, len(c.upgrades))
	for _, u := range c.upgrades {
		if level < u.UnlockedAtLevel || skip[u.ID] {
			continue
		}
		out = append(out, u)
	}
	return out
}

// RollRarity rolls one tier from the rarity table. An empty table yields Common.
func (c *Catalog) RollRarity() defs.Rarity {
	rw, _, ok := utils.ChooseWeighted(c.rng, c.rarityWeights, func(r defs.RarityWeight) int { return r.Weight })
	if !ok {
		return defs.RarityCommon
	}
	return rw.Rarity
}

// PickRandom draws up to count distinct upgrades for level. Each draw rolls
// a rarity first, narrows the pool to that rarity (or keeps the whole pool
// when nothing matches) and then rolls by upgrade weight.
func (c *Catalog) PickRandom(level, count int, exclude []string) []defs.UpgradeDefinition {
	pool := c.Eligible(level, exclude)
	if len(pool) == 0 || count <= 0 {
		if count > 0 {
			c.log.Warn("no upgrades eligible", zap.Int("level", level))
		}
		return nil
	}
	if len(c.rarityWeights) == 0 {
		return utils.SampleWithoutReplacement(c.rng, pool, count, upgradeWeight)
	}

	picks := make([]defs.UpgradeDefinition, 0, min(count, len(pool)))
	for len(picks) < count && len(pool) > 0 {
		rarity := c.RollRarity()
		tier := filterRarity(pool, rarity)
		if len(tier) == 0 {
			tier = pool
		}
		picked, _, ok := utils.ChooseWeighted(c.rng, tier, upgradeWeight)
		if !ok {
			break
		}
		picks = append(picks, picked)
		pool = removeByID(pool, picked.ID)
	}
	return picks
}

func upgradeWeight(u defs.UpgradeDefinition) int { return u.Weight }

func filterRarity(pool []defs.UpgradeDefinition, rarity defs.Rarity) []defs.UpgradeDefinition {
	var out []defs.UpgradeDefinition
	for _, u := range pool {
		if u.Rarity == rarity {
			out = append(out, u)
		}
	}
	return out
}

func removeByID(pool []defs.UpgradeDefinition, id string) []defs.UpgradeDefinition {
	for i, u := range pool {
		if u.ID == id {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}
