package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла этим ударом.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Heal лечит, но не выше MaxHP. Мертвых не лечим.
func (s *StatsComponent) Heal(amount int) {
	if s.IsDead {
		return
	}
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}
