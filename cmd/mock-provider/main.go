// Command mock-provider runs an OpenAI-compatible chat completions endpoint
// that can simulate upstream failures, for exercising the retry and
// failover paths without a real inference account.
//
// Query parameters control the behavior of each request:
//
//	?delay=<ms>   sleep before responding
//	?fail=<code>  respond with that HTTP status and an error body
//	?fail=timeout sleep past the caller's 60s budget
//	?empty=true   respond 200 with whitespace-only content
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var affirmations = []string{
	"Stay steady, Amina. Like the morning tide, this feeling will shift, and you have weathered every one before it.",
	"You are doing better than you think, and naming how you feel is already a brave first step.",
	"Even a small candle pushes back the whole evening. Keep going.",
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "8001"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/v1/chat/completions", handleChatCompletion)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Infof("Mock inference provider starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Mock provider exited: %v", err)
	}
}

func handleChatCompletion(c *gin.Context) {
	delayStr := c.Query("delay")
	fail := c.Query("fail")
	empty := c.Query("empty")

	log.WithFields(log.Fields{
		"delay": delayStr,
		"fail":  fail,
		"empty": empty,
	}).Info("Received request")

	if delayStr != "" {
		ms, err := strconv.Atoi(delayStr)
		if err == nil && ms > 0 {
			log.Infof("Applying delay of %dms", ms)
			time.Sleep(time.Duration(ms) * time.Millisecond)
		}
	}

	if fail != "" {
		handleFailure(c, fail)
		return
	}

	if empty == "true" {
		respondWith(c, "   \n  ")
		return
	}

	respondWith(c, affirmations[rand.Intn(len(affirmations))])
}

func handleFailure(c *gin.Context, failType string) {
	log.Warnf("Simulating failure: %s", failType)

	switch failType {
	case "timeout":
		// Outlast the caller's per-call budget.
		log.Info("Simulating timeout (sleeping 70s)")
		time.Sleep(70 * time.Second)
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": gin.H{
				"message": "Gateway timeout",
				"type":    "timeout_error",
				"code":    "timeout",
			},
		})
	case "body":
		// Failure reported inside a 200 body, the way some routers do.
		c.JSON(http.StatusOK, gin.H{
			"error": "model overloaded, try again later",
		})
	default:
		code, err := strconv.Atoi(failType)
		if err != nil || code < 400 || code > 599 {
			code = http.StatusInternalServerError
		}
		c.JSON(code, gin.H{
			"error": gin.H{
				"message": fmt.Sprintf("Simulated error %d", code),
				"type":    "simulated_error",
				"code":    fmt.Sprintf("error_%d", code),
			},
		})
	}
}

func respondWith(c *gin.Context, content string) {
	c.JSON(http.StatusOK, gin.H{
		"id":      fmt.Sprintf("mock-%d", rand.Intn(100000)),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "mock-model",
		"choices": []gin.H{
			{
				"index": 0,
				"message": gin.H{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": gin.H{
			"prompt_tokens":     10,
			"completion_tokens": 15,
			"total_tokens":      25,
		},
	})
}
