package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	usersCount  = 100
	skillsCount = 20
)

var (
	targetHost = flag.String("target", "http://localhost:8080", "service base url")
	rps        = flag.Int("rps", 20, "requests per second")
	duration   = flag.Duration("duration", time.Minute, "attack duration")

	logger = logrus.New()
	httpc  = &http.Client{Timeout: 10 * time.Second}
	secret = os.Getenv("JWT_SECRET")

	users  []string
	skills []string
)

// authHeaders возвращает заголовки, идентифицирующие пользователя перед сервисом.
func authHeaders(userID string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if secret == "" {
		h.Set("X-User-Id", userID)
		return h
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(*duration + time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		logger.Fatalf("sign token: %v", err)
	}
	h.Set("Authorization", "Bearer "+signed)
	return h
}

func postJSON(userID, path string, body any) (int, []byte, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, *targetHost+path, bytes.NewBuffer(b))
	req.Header = authHeaders(userID)
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes(), nil
}

// Seed
func seedData() error {
	logger.Info("Seeding: profiles and skills...")

	for u := 1; u <= usersCount; u++ {
		uid := fmt.Sprintf("load-user-%03d", u)
		status, _, err := postJSON(uid, "/users/me", map[string]any{"username": fmt.Sprintf("Load User %d", u)})
		if err != nil {
			return err
		}
		if status >= 400 {
			logger.Warnf("users/me returned %d", status)
		}
		users = append(users, uid)
	}

	for s := 1; s <= skillsCount; s++ {
		status, body, err := postJSON(users[0], "/skills", map[string]any{
			"name":     fmt.Sprintf("load-skill-%d-%d", s, time.Now().UnixNano()),
			"category": "load",
		})
		if err != nil {
			return err
		}
		if status >= 400 {
			logger.Warnf("skills returned %d", status)
			continue
		}
		var resp struct {
			Skill struct {
				SkillID string `json:"skill_id"`
			} `json:"skill"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return err
		}
		skills = append(skills, resp.Skill.SkillID)
	}
	if len(skills) < 2 {
		return fmt.Errorf("not enough skills seeded: %d", len(skills))
	}

	logger.Info("Seeding: offers and requests...")
	for i, uid := range users {
		offered := skills[i%len(skills)]
		requested := skills[(i+1)%len(skills)]
		if status, _, err := postJSON(uid, "/me/offers", map[string]any{
			"skill_id":           offered,
			"proficiency_level":  "advanced",
			"can_teach_remotely": i%2 == 0,
		}); err != nil {
			return err
		} else if status >= 400 {
			logger.Warnf("me/offers returned %d", status)
		}
		if status, _, err := postJSON(uid, "/me/requests", map[string]any{"skill_id": requested}); err != nil {
			return err
		} else if status >= 400 {
			logger.Warnf("me/requests returned %d", status)
		}
	}

	logger.WithFields(logrus.Fields{"users": len(users), "skills": len(skills)}).Info("Seed completed")
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		i := rand.Intn(len(users))
		uid := users[i]
		t.Header = authHeaders(uid)
		t.Body = nil

		switch {
		// 50% GET matches
		case r < 0.50:
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/matches?limit=20", *targetHost)

		// 20% GET feedback summary
		case r < 0.70:
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/feedback/summary", *targetHost, users[rand.Intn(len(users))])

		// 15% GET swaps
		case r < 0.85:
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/swaps?direction=all", *targetHost)

		// 10% GET recommendations
		case r < 0.95:
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/matches/recommended?limit=5", *targetHost)

		// 5% POST swaps: пользователь i учит skills[i], а хочет skills[i+1], которому учит пользователь i+1
		default:
			partner := (i + 1) % len(users)
			body, _ := json.Marshal(map[string]string{
				"requested_user_id":  users[partner],
				"offered_skill_id":   skills[i%len(skills)],
				"requested_skill_id": skills[partner%len(skills)],
			})
			t.Method = http.MethodPost
			t.URL = *targetHost + "/swaps"
			t.Body = body
		}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	logger.Infof("Starting attack: %s for %s", *targetHost, *duration)
	for res := range attacker.Attack(targeter, rate, *duration, "skill-swap-load") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, count := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, count)
	}
}

func main() {
	flag.Parse()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := seedData(); err != nil {
		logger.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
