package event

const (
	ShotFired       EventType = "ShotFired"       // AmmoData
	TargetSpawned   EventType = "TargetSpawned"   // PointData
	TargetHit       EventType = "TargetHit"       // PointData, точка попадания снаряда
	TargetDestroyed EventType = "TargetDestroyed" // ScoreData
	VehicleHit      EventType = "VehicleHit"      // HealthData
	AmmoResupplied  EventType = "AmmoResupplied"  // AmmoData
	GameOver        EventType = "GameOver"        // ScoreData, итоговый счёт
	SessionReset    EventType = "SessionReset"
)

// AllTypes lists every gameplay event, in the order they can occur within a tick.
var AllTypes = []EventType{
	ShotFired, TargetHit, TargetDestroyed, VehicleHit, TargetSpawned, AmmoResupplied, GameOver, SessionReset,
}

type PointData struct {
	X, Y float64
}

type ScoreData struct {
	X, Y  float64
	Score int
}

type AmmoData struct {
	Ammo int
}

type HealthData struct {
	X, Y   float64
	Health int
}
