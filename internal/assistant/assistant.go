// Package assistant генерирует инфраструктурный код по запросу пользователя.
//
// Модель не вызывается: запрос сопоставляется с ключевыми словами,
// и возвращается один из готовых шаблонов.
package assistant

import "strings"

// Explanation — пояснение, которое возвращается с любым ответом.
const Explanation = "Here is the generated infrastructure code based on your request."

// Fallback — ответ для запросов без известного ключевого слова.
const Fallback = "# I'm sorry, I can only generate Docker, Terraform, or Nginx config at the moment."

const dockerfileTemplate = `
FROM node:18-alpine
WORKDIR /app
COPY package*.json ./
RUN npm install
COPY . .
EXPOSE 3000
CMD ["npm", "start"]
`

const terraformTemplate = `
resource "aws_instance" "web" {
  ami           = "ami-0c55b159cbfafe1f0"
  instance_type = "t2.micro"

  tags = {
    Name = "DragonOpsWebServer"
  }
}
`

const nginxTemplate = `
server {
    listen 80;
    server_name example.com;
    location / {
        proxy_pass http://localhost:3000;
        proxy_http_version 1.1;
        proxy_set_header Upgrade $http_upgrade;
        proxy_set_header Connection 'upgrade';
        proxy_set_header Host $host;
        proxy_cache_bypass $http_upgrade;
    }
}
`

// templates проверяются по порядку, побеждает первое совпадение.
var templates = []struct {
	keyword string
	code    string
}{
	{"docker", dockerfileTemplate},
	{"terraform", terraformTemplate},
	{"nginx", nginxTemplate},
}

// Result — сгенерированный код и пояснение.
type Result struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// Generate подбирает шаблон по prompt. Регистр не важен.
func Generate(prompt string) Result {
	lower := strings.ToLower(prompt)
	for _, t := range templates {
		if strings.Contains(lower, t.keyword) {
			return Result{Code: t.code, Explanation: Explanation}
		}
	}
	return Result{Code: Fallback, Explanation: Explanation}
}
