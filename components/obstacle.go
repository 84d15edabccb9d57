package components

import "github.com/yohamta/donburi"

// ObstacleData links a wall entity back to its slot in LevelData.Obstacles.
type ObstacleData struct {
	Index int
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
