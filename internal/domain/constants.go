package domain

// Параметры восприятия
const (
	VisionRadius = 8
	AggroRadius  = 10
)

// Цвета, которыми ядро само перекрашивает тайлы
const (
	ColorBlood uint32 = 0xAA0000
)

// Стоимость действий во времени (тики)
const (
	TimeCostMove   = 100
	TimeCostAttack = 80
	TimeCostWait   = 50
)
