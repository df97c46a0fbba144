package game

const helpBlock = `Commands:
  look / l
  go <place>            (e.g., go forest_path or go forest path)
  back
  take <item> / drop <item>
  equip <item> / unequip <slot>
  use <item>
  shop / buy <item>
  talk to <npc> [text]
  ask <npc> about <topic>
  inventory / i
  stats / quests / map / achievements / relationships
  save [name] / load <name> / saves
  music / volume <n>
  quit
While in combat: attack, defend, flee`

const combatHelpBlock = `You're in combat. Commands: attack, defend, flee
(look, inventory, and stats still work)`

const gameOverHelpBlock = `You have fallen. Commands: restart, load <name>, saves, quit`

func (s *Session) helpText() string {
	switch {
	case s.World.GameOver:
		return gameOverHelpBlock
	case s.World.InCombat():
		return combatHelpBlock
	default:
		return helpBlock
	}
}
