package game

// collisions is the outcome of one tick's collision passes.
// It is computed without touching the world and applied afterwards, so
// removals never disturb the iteration that found them.
type collisions struct {
	spentBullets []bool
	hitAsteroids []bool
	hitAliens    []bool
	playerHit    bool
}

// collide runs the four passes: player bullets against asteroids, player
// bullets against aliens, alien bullets against the player and asteroids
// against the player. A bullet is consumed by the first target it hits.
func (w *World) collide() collisions {
	c := collisions{
		spentBullets: make([]bool, len(w.bullets)),
		hitAsteroids: make([]bool, len(w.asteroids)),
		hitAliens:    make([]bool, len(w.aliens)),
	}

	for bi, b := range w.bullets {
		if !b.PlayerShot {
			continue
		}
		trail := b.Trail()
		for ai, a := range w.asteroids {
			if c.hitAsteroids[ai] || !w.field.Collide(a.Hitbox(), trail) {
				continue
			}
			c.hitAsteroids[ai] = true
			c.spentBullets[bi] = true
			break
		}
	}

	for bi, b := range w.bullets {
		if !b.PlayerShot || c.spentBullets[bi] {
			continue
		}
		trail := b.Trail()
		for ai, a := range w.aliens {
			if c.hitAliens[ai] || !w.field.Collide(a.Hitbox(), trail) {
				continue
			}
			c.hitAliens[ai] = true
			c.spentBullets[bi] = true
			break
		}
	}

	ship := w.player.Hitbox()
	for bi, b := range w.bullets {
		if b.PlayerShot {
			continue
		}
		if w.field.Collide(ship, b.Trail()) {
			c.spentBullets[bi] = true
			c.playerHit = true
		}
	}

	for _, a := range w.asteroids {
		if w.field.Collide(a.Hitbox(), ship) {
			c.playerHit = true
			break
		}
	}

	return c
}

// resolve applies a collision report: scores kills, splits rocks, spawns
// explosions and finally costs a life if the ship was hit
func (w *World) resolve(c collisions) {
	var born []*Asteroid
	asteroids := w.asteroids[:0]
	for i, a := range w.asteroids {
		if !c.hitAsteroids[i] {
			asteroids = append(asteroids, a)
			continue
		}
		w.addScore(a.Score(w.cfg.Asteroid.ScorePerRadius))
		w.particles = append(w.particles, Explosion(a.X, a.Y, w.now, w.cfg.Particle, w.rng)...)
		born = append(born, a.Split(w.cfg.Asteroid, w.rng)...)
	}
	w.asteroids = append(asteroids, born...)

	aliens := w.aliens[:0]
	for i, a := range w.aliens {
		if !c.hitAliens[i] {
			aliens = append(aliens, a)
			continue
		}
		w.addScore(w.cfg.Alien.Tier(a.Strategy).Points)
		w.particles = append(w.particles, Explosion(a.X, a.Y, w.now, w.cfg.Particle, w.rng)...)
	}
	w.aliens = aliens

	bullets := w.bullets[:0]
	for i, b := range w.bullets {
		if !c.spentBullets[i] {
			bullets = append(bullets, b)
		}
	}
	w.bullets = bullets

	if c.playerHit {
		w.die()
	}
}
