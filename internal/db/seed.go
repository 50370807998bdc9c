package db

import (
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/pkg/logger"
)

type samplePost struct {
	title   string
	content string
	tags    []string
}

var samplePosts = []samplePost{
	{
		title: "Getting Started with React",
		content: `
        <h2>Introduction to React</h2>
        <p>React is a popular JavaScript library for building user interfaces. It makes creating interactive UIs painless and efficient. React lets you compose complex UIs from small, isolated pieces of code called components.</p>
        
        <h3>Key Features of React</h3>
        <ul>
            <li><strong>Declarative</strong>: React makes it painless to create interactive UIs. Design simple views for each state in your application.</li>
            <li><strong>Component-Based</strong>: Build encapsulated components that manage their own state, then compose them to make complex UIs.</li>
            <li><strong>Learn Once, Write Anywhere</strong>: You can develop new features in React without rewriting existing code.</li>
        </ul>
        
        <h3>A Simple Component</h3>
        <pre><code>
function Welcome(props) {
  return &lt;h1&gt;Hello, {props.name}&lt;/h1&gt;;
}
        </code></pre>
        
        <p>React has been designed from the start for gradual adoption, and you can use as little or as much React as you need.</p>
        `,
		tags: []string{"React", "JavaScript"},
	},
	{
		title: "Building RESTful APIs with Flask",
		content: `
        <h2>What is Flask?</h2>
        <p>Flask is a lightweight WSGI web application framework in Python. It is designed to make getting started quick and easy, with the ability to scale up to complex applications.</p>
        
        <p>Flask is considered a microframework because it does not require particular tools or libraries. It has no database abstraction layer, form validation, or any other components where pre-existing third-party libraries provide common functions.</p>
        
        <h3>A Basic Flask App</h3>
        <pre><code>
from flask import Flask
app = Flask(__name__)

@app.route('/')
def hello_world():
    return 'Hello, World!'

if __name__ == '__main__':
    app.run(debug=True)
        </code></pre>
        
        <h3>REST API with Flask</h3>
        <p>Flask makes it easy to create RESTful APIs. Here's how you can define routes:</p>
        
        <blockquote>
        REST (Representational State Transfer) is an architectural style for designing networked applications. RESTful APIs use HTTP methods explicitly and are stateless.
        </blockquote>
        
        <p>Common HTTP methods used in RESTful APIs:</p>
        <ul>
            <li><strong>GET</strong>: Retrieve resources</li>
            <li><strong>POST</strong>: Create a new resource</li>
            <li><strong>PUT</strong>: Update an existing resource</li>
            <li><strong>DELETE</strong>: Remove a resource</li>
        </ul>
        `,
		tags: []string{"Python", "Flask", "API"},
	},
	{
		title: "CSS Flexbox Layout Guide",
		content: `
        <h2>Understanding Flexbox</h2>
        <p>Flexbox is a one-dimensional layout method for arranging items in rows or columns. Items flex (expand) to fill additional space or shrink to fit into smaller spaces.</p>
        
        <h3>The Flex Container</h3>
        <p>To create a flex container, set the <code>display</code> property to <code>flex</code>:</p>
        
        <pre><code>
.container {
  display: flex;
  flex-direction: row; /* or column */
  justify-content: space-between; /* horizontal alignment */
  align-items: center; /* vertical alignment */
  flex-wrap: wrap; /* allows items to wrap */
}
        </code></pre>
        
        <h3>Common Flexbox Properties</h3>
        <ul>
            <li><strong>flex-direction</strong>: Sets the direction of the flex container (row, row-reverse, column, column-reverse)</li>
            <li><strong>justify-content</strong>: Aligns items along the main axis (flex-start, flex-end, center, space-between, space-around)</li>
            <li><strong>align-items</strong>: Aligns items along the cross axis (flex-start, flex-end, center, stretch, baseline)</li>
            <li><strong>flex-wrap</strong>: Controls wrapping of items (nowrap, wrap, wrap-reverse)</li>
        </ul>
        
        <h3>Flexbox Item Properties</h3>
        <p>Individual flex items can be controlled with:</p>
        <pre><code>
.item {
  flex-grow: 1; /* allows item to grow */
  flex-shrink: 0; /* prevents item from shrinking */
  flex-basis: 200px; /* initial size */
  /* shorthand for the above three properties */
  flex: 1 0 200px;
}
        </code></pre>
        
        <p>Flexbox has transformed how we build layouts in CSS, making many complex layouts much easier to achieve.</p>
        `,
		tags: []string{"CSS", "Web Development"},
	},
}

// Seed loads the sample posts into the store in order, creating their tags on
// first sight. It is meant to run once on an empty store at startup.
func Seed(store *Store) {
	logger.Info("Seeding sample data...")

	store.Mu.Lock()
	defer store.Mu.Unlock()

	for _, sample := range samplePosts {
		post := &model.Post{Title: sample.title, Content: sample.content}
		store.InsertPost(post)
		for _, name := range sample.tags {
			tagID, _ := store.ResolveTag(name)
			store.Link(post.ID, tagID)
		}
	}

	logger.Info("Sample data seeded successfully", map[string]interface{}{
		"posts": len(store.Posts),
		"tags":  len(store.Tags),
		"links": len(store.PostTags),
	})
}

// SetupTestStore returns a store seeded with the sample data for tests
func SetupTestStore() *Store {
	store := NewStore()
	Seed(store)
	return store
}
