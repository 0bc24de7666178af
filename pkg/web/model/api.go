package model

// 请求/响应数据结构
type (
	AuthorReq struct {
		Name string `json:"name"`
		Bio  string `json:"bio"`
	}

	BookReq struct {
		AuthorID int64  `json:"author_id"`
		Title    string `json:"title"`
		PubYear  string `json:"pub_year"`
		Genre    string `json:"genre"`
	}

	CredentialsReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	SuccessRes struct {
		Success string `json:"success"`
	}

	LoginRes struct {
		Success string `json:"success"`
		Token   string `json:"token"`
		UserID  int64  `json:"user_id"`
	}
)
